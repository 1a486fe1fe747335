package honeypot

import "netdecoy/pkg/metrics"

var (
	mAccepted  = metrics.NewCounter("decoy_connections_total", "Accepted decoy connections")
	mChunks    = metrics.NewCounter("decoy_chunks_total", "Inbound data chunks captured")
	mBindError = metrics.NewCounter("decoy_bind_errors_total", "Listener bind failures")
	mLogError  = metrics.NewCounter("decoy_log_errors_total", "Activity log submissions that failed")
	gActive    = metrics.NewGauge("decoy_active_sessions", "Connections currently open")
)

// RegisterMetrics adds the honeypot counters to an ops registry.
func RegisterMetrics(reg *metrics.Registry) {
	reg.Register(mAccepted)
	reg.Register(mChunks)
	reg.Register(mBindError)
	reg.Register(mLogError)
	reg.RegisterGauge(gActive)
}

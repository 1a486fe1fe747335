package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netdecoy/internal/activity"
	"netdecoy/internal/config"
	"netdecoy/internal/honeypot"
	"netdecoy/pkg/eventbus"
	"netdecoy/pkg/logging"
	"netdecoy/pkg/metrics"
	otelobs "netdecoy/pkg/observability/otel"
)

const serviceName = "netdecoy"

func main() {
	shutdown := otelobs.InitTracer(serviceName)
	defer shutdown(context.Background())

	bind := config.Getenv("NETDECOY_BIND", "0.0.0.0")
	logDir := config.Getenv("NETDECOY_LOG_DIR", "honeypot_logs")
	ports, err := config.Ports("NETDECOY_PORTS")
	if err != nil {
		logging.Warnf("[%s] invalid NETDECOY_PORTS (%v), using defaults %v", serviceName, err, ports)
	}

	sink, err := activity.NewSink(logDir)
	if err != nil {
		log.Fatalf("[%s] activity log: %v", serviceName, err)
	}
	defer sink.Close()
	logging.Infof("[%s] activity log at %s", serviceName, sink.Path())

	bus := eventbus.NewBus(1024)
	defer bus.Close()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		pub := activity.NewRedisPublisher(addr, config.Getenv("REDIS_CHANNEL", "netdecoy.activity"))
		defer pub.Close()
		bus.Register(pub)
		logging.Infof("[%s] mirroring activity to redis %s", serviceName, addr)
	}

	sup := honeypot.NewSupervisor(bind, ports, sink, bus)
	sup.Start()

	// The decoy exposes no network surface beyond its ports; health and
	// metrics bind only when the operator asks for them.
	if addr := os.Getenv("NETDECOY_OPS_ADDR"); addr != "" {
		go serveOps(addr)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logging.Infof("[%s] interrupt received, exiting", serviceName)
	// In-flight connections are not drained; process exit is the shutdown
	// mechanism for a low-interaction decoy.
}

func serveOps(addr string) {
	reg := metrics.NewRegistry()
	honeypot.RegisterMetrics(reg)
	activity.RegisterMetrics(reg)
	activity.RegisterPublisherMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", reg)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logging.Infof("[%s] ops listening on %s", serviceName, addr)
	if err := srv.ListenAndServe(); err != nil {
		logging.Errorf("[%s] ops server stopped: %v", serviceName, err)
	}
}

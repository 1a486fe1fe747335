package honeypot

import (
	"errors"
	"io"
	"net"
	"time"

	"netdecoy/internal/activity"
	"netdecoy/pkg/eventbus"
	"netdecoy/pkg/logging"
)

const (
	// readChunkSize bounds a single capture; each chunk becomes one record.
	readChunkSize = 1024

	bannerWriteTimeout = 5 * time.Second
)

// ActivityEvent is the bus payload emitted for every captured chunk.
type ActivityEvent struct {
	SessionID string          `json:"session_id"`
	Record    activity.Record `json:"record"`
}

// SessionEvent is the bus payload emitted once per accepted connection.
type SessionEvent struct {
	SessionID  string `json:"session_id"`
	RemoteAddr string `json:"remote_addr"`
	Port       int    `json:"port"`
}

// handle owns one accepted connection: banner, capture loop, fixed
// rejection replies, close. Every exit path closes the connection exactly
// once; no failure here escapes the session.
func handle(conn net.Conn, sessionID, remoteIP string, port int, sink *activity.Sink, bus *eventbus.Bus) {
	defer conn.Close()
	gActive.Add(1)
	defer gActive.Add(-1)

	if banner, ok := Banner(port); ok {
		_ = conn.SetWriteDeadline(time.Now().Add(bannerWriteTimeout))
		if _, err := conn.Write(banner); err != nil {
			logging.Errorf("session %s: banner write on port %d: %v", sessionID, port, err)
			return
		}
		_ = conn.SetWriteDeadline(time.Time{})
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			rec := activity.NewRecord(remoteIP, port, buf[:n])
			if serr := sink.Record(rec); serr != nil {
				// Reported, never fatal: the peer keeps talking to a decoy
				// even when the disk does not cooperate.
				mLogError.Inc()
				logging.Errorf("session %s: log record: %v", sessionID, serr)
			}
			mChunks.Inc()
			if bus != nil {
				bus.TryPublish(eventbus.Event{
					Type:    eventbus.TopicActivity,
					Source:  "netdecoy",
					Payload: ActivityEvent{SessionID: sessionID, Record: rec},
				})
			}
			if _, werr := conn.Write(rejection); werr != nil {
				logging.Errorf("session %s: reply on port %d: %v", sessionID, port, werr)
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logging.Errorf("session %s: read on port %d: %v", sessionID, port, err)
			}
			return
		}
	}
}

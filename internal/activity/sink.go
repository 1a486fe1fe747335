package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"netdecoy/pkg/metrics"
)

var (
	mRecords   = metrics.NewCounter("decoy_records_total", "Activity records appended")
	mSinkError = metrics.NewCounter("decoy_record_errors_total", "Activity record write failures")
)

// RegisterMetrics adds the sink counters to an ops registry.
func RegisterMetrics(reg *metrics.Registry) {
	reg.Register(mRecords)
	reg.Register(mSinkError)
}

// Sink appends activity records as JSON lines to a day-partitioned file.
// The target file is chosen once at construction; a process running past
// midnight keeps writing to the file it opened. Writes are serialized so
// records from concurrent handlers never interleave within one line.
type Sink struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// NewSink opens (creating directories as needed) the log file for the
// current calendar day under dir.
func NewSink(dir string) (*Sink, error) {
	if dir == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("honeypot_%s.json", time.Now().Format("20060102")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &Sink{f: f, path: path}, nil
}

// Path returns the file the sink writes to.
func (s *Sink) Path() string { return s.path }

// Record appends one record followed by a newline. Errors are returned for
// the caller to report; they never abort the triggering connection.
func (s *Sink) Record(rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		mSinkError.Inc()
		return fmt.Errorf("marshal record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		mSinkError.Inc()
		return fmt.Errorf("sink closed")
	}
	if _, err := s.f.Write(append(payload, '\n')); err != nil {
		mSinkError.Inc()
		return fmt.Errorf("write record: %w", err)
	}
	mRecords.Inc()
	return nil
}

// Close releases the file handle. Subsequent Record calls fail.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

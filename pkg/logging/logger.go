package logging

import (
	"log"
	"time"
)

// Leveled wrappers over the stdlib logger. Timestamps are emitted in UTC
// RFC3339Nano so log lines collate with activity records and traces.

func Infof(format string, args ...any) {
	log.Printf("INFO  %s "+format, append([]any{time.Now().UTC().Format(time.RFC3339Nano)}, args...)...)
}

func Warnf(format string, args ...any) {
	log.Printf("WARN  %s "+format, append([]any{time.Now().UTC().Format(time.RFC3339Nano)}, args...)...)
}

func Errorf(format string, args ...any) {
	log.Printf("ERROR %s "+format, append([]any{time.Now().UTC().Format(time.RFC3339Nano)}, args...)...)
}

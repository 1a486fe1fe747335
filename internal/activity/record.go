package activity

import (
	"strings"
	"time"
)

// Record is one logged interaction unit: a single inbound data chunk plus
// its connection metadata. A connection that sends K chunks produces K
// records.
type Record struct {
	Timestamp string `json:"timestamp"`
	RemoteIP  string `json:"remote_ip"`
	Port      int    `json:"port"`
	Data      string `json:"data"`
}

// NewRecord builds a record for a received chunk. Arbitrary bytes are
// decoded permissively: invalid UTF-8 sequences become U+FFFD rather than
// failing the capture.
func NewRecord(remoteIP string, port int, chunk []byte) Record {
	return Record{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		RemoteIP:  remoteIP,
		Port:      port,
		Data:      strings.ToValidUTF8(string(chunk), "�"),
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPorts is the built-in decoy port set used whenever no valid
// override is supplied.
var DefaultPorts = []int{21, 22, 80, 443}

// Getenv returns an environment variable or the default when unset.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetenvInt returns an integer environment variable or the default when
// unset or unparseable.
func GetenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ParsePorts parses a comma-separated port list. Blank entries are skipped,
// duplicates keep their first position. Any malformed or out-of-range entry
// invalidates the whole override: the caller gets the default set back along
// with the error so it can warn once and continue.
func ParsePorts(s string) ([]int, error) {
	var ports []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return append([]int(nil), DefaultPorts...), fmt.Errorf("invalid port %q", part)
		}
		if n < 1 || n > 65535 {
			return append([]int(nil), DefaultPorts...), fmt.Errorf("port %d out of range", n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		ports = append(ports, n)
	}
	if len(ports) == 0 {
		return append([]int(nil), DefaultPorts...), fmt.Errorf("empty port list")
	}
	return ports, nil
}

// Ports resolves the listening port set from the given environment variable,
// falling back to DefaultPorts. The returned error is advisory: the port
// slice is always usable.
func Ports(envKey string) ([]int, error) {
	v := os.Getenv(envKey)
	if v == "" {
		return append([]int(nil), DefaultPorts...), nil
	}
	return ParsePorts(v)
}

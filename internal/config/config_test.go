package config

import (
	"reflect"
	"testing"
)

func TestParsePorts(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"plain", "21,22,80,443", []int{21, 22, 80, 443}, false},
		{"spaces and blanks", " 2121, ,8080 ", []int{2121, 8080}, false},
		{"duplicates keep first", "80,443,80", []int{80, 443}, false},
		{"non-numeric invalidates all", "21,ssh,80", DefaultPorts, true},
		{"zero out of range", "0,80", DefaultPorts, true},
		{"too large", "70000", DefaultPorts, true},
		{"only separators", ", ,", DefaultPorts, true},
		{"empty", "", DefaultPorts, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePorts(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ports = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPortsEnvFallback(t *testing.T) {
	const key = "NETDECOY_TEST_PORTS"

	t.Run("unset uses defaults silently", func(t *testing.T) {
		ports, err := Ports(key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(ports, DefaultPorts) {
			t.Fatalf("ports = %v, want defaults", ports)
		}
	})

	t.Run("override honored", func(t *testing.T) {
		t.Setenv(key, "1022,1080")
		ports, err := Ports(key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(ports, []int{1022, 1080}) {
			t.Fatalf("ports = %v", ports)
		}
	})

	t.Run("invalid override reports and falls back", func(t *testing.T) {
		t.Setenv(key, "not,ports")
		ports, err := Ports(key)
		if err == nil {
			t.Fatal("expected advisory error")
		}
		if !reflect.DeepEqual(ports, DefaultPorts) {
			t.Fatalf("ports = %v, want defaults", ports)
		}
	})
}

func TestGetenvHelpers(t *testing.T) {
	t.Setenv("NETDECOY_TEST_STR", "x")
	if got := Getenv("NETDECOY_TEST_STR", "d"); got != "x" {
		t.Fatalf("Getenv = %q", got)
	}
	if got := Getenv("NETDECOY_TEST_MISSING", "d"); got != "d" {
		t.Fatalf("Getenv default = %q", got)
	}
	t.Setenv("NETDECOY_TEST_INT", "not-a-number")
	if got := GetenvInt("NETDECOY_TEST_INT", 7); got != 7 {
		t.Fatalf("GetenvInt = %d", got)
	}
}

package honeypot

import "testing"

func TestBannerTable(t *testing.T) {
	cases := []struct {
		port int
		want string
	}{
		{21, "220 FTP server ready\r\n"},
		{22, "SSH-2.0-OpenSSH_8.2p1 Ubuntu-4ubuntu0.1\r\n"},
		{80, "HTTP/1.1 200 OK\r\nServer: Apache/2.4.41 (Ubuntu)\r\n\r\n"},
		{443, "HTTP/1.1 200 OK\r\nServer: Apache/2.4.41 (Ubuntu)\r\n\r\n"},
	}
	for _, tc := range cases {
		b, ok := Banner(tc.port)
		if !ok {
			t.Fatalf("port %d: no banner", tc.port)
		}
		if string(b) != tc.want {
			t.Fatalf("port %d banner = %q, want %q", tc.port, b, tc.want)
		}
	}
	if _, ok := Banner(8080); ok {
		t.Fatal("port 8080 should have no banner")
	}
}

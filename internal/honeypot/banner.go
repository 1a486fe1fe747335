package honeypot

// banners maps a listening port to the greeting written immediately after
// accept, before any read. Ports without an entry stay silent until the
// peer speaks.
var banners = map[int][]byte{
	21:  []byte("220 FTP server ready\r\n"),
	22:  []byte("SSH-2.0-OpenSSH_8.2p1 Ubuntu-4ubuntu0.1\r\n"),
	80:  []byte("HTTP/1.1 200 OK\r\nServer: Apache/2.4.41 (Ubuntu)\r\n\r\n"),
	443: []byte("HTTP/1.1 200 OK\r\nServer: Apache/2.4.41 (Ubuntu)\r\n\r\n"),
}

// Banner returns the banner bytes for a port, if one is defined.
func Banner(port int) ([]byte, bool) {
	b, ok := banners[port]
	return b, ok
}

// rejection is sent back after every captured chunk, whatever its content.
var rejection = []byte("Command not recognized.\r\n")

package commands

import (
	"net"
	"testing"
)

func TestListenURL(t *testing.T) {
	tests := []struct {
		name   string
		addr   net.Addr
		host   string
		secure bool
		want   string
	}{{
		name: "loopback",
		addr: &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080},
		host: "127.0.0.1",
		want: "http://127.0.0.1:8080/mcp",
	}, {
		name: "wildcard",
		addr: &net.TCPAddr{IP: net.IPv4zero, Port: 9000},
		host: "0.0.0.0",
		want: "http://127.0.0.1:9000/mcp",
	}, {
		name:   "ipv6 with tls",
		addr:   &net.TCPAddr{IP: net.IPv6loopback, Port: 443},
		host:   "::1",
		secure: true,
		want:   "https://[::1]:443/mcp",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listenURL(tt.addr, tt.host, "/mcp", tt.secure); got != tt.want {
				t.Fatalf("listenURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

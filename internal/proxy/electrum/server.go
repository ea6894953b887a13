package electrum

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Server is an Electrum endpoint in "host:port:s" (TLS) or "host:port:t" (plain TCP) form.
type Server struct {
	Host string
	Port int
	TLS  bool
}

// ParseServer parses the "host:port[:s|t]" notation. TLS is the default.
func ParseServer(s string) (Server, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Server{}, fmt.Errorf("invalid electrum server %q", s)
	}
	port, err := strconv.Atoi(parts[1])
	if err != nil || port <= 0 || port > 65535 {
		return Server{}, fmt.Errorf("invalid electrum server port in %q", s)
	}
	server := Server{Host: parts[0], Port: port, TLS: true}
	if len(parts) == 3 {
		switch parts[2] {
		case "s":
		case "t":
			server.TLS = false
		default:
			return Server{}, fmt.Errorf("invalid electrum server protocol %q", parts[2])
		}
	}
	if server.Host == "" {
		return Server{}, fmt.Errorf("invalid electrum server host in %q", s)
	}
	return server, nil
}

// ParseServers parses a list of servers.
func ParseServers(list []string) ([]Server, error) {
	servers := make([]Server, 0, len(list))
	for _, s := range list {
		server, err := ParseServer(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		servers = append(servers, server)
	}
	return servers, nil
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s Server) String() string {
	proto := "s"
	if !s.TLS {
		proto = "t"
	}
	return s.Addr() + ":" + proto
}

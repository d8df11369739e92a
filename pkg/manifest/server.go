package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultBindIP       = "127.0.0.1"
	DefaultBindPort     = "8080"
	DefaultMaxBodyBytes = 1 << 20
)

// Server is the [server] table: listen address and request limits.
type Server struct {
	BindIP       string `toml:"bind_ip"`
	BindPort     string `toml:"bind_port"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

func (s *Server) validate() error {
	s.BindIP = strings.TrimSpace(s.BindIP)
	if s.BindIP == "" {
		s.BindIP = DefaultBindIP
	}
	s.BindPort = strings.TrimSpace(s.BindPort)
	if s.BindPort == "" {
		s.BindPort = DefaultBindPort
	}
	n, err := strconv.Atoi(s.BindPort)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("server.bind_port %q must be a port number in 1..65535", s.BindPort)
	}
	if s.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must be >= 0")
	}
	if s.MaxBodyBytes == 0 {
		s.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return nil
}

// Package hostport parses "host:port" strings for DHT bootstrap nodes
// and magnet-link peers, where host may be a bracketed IPv6 literal.
package hostport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// Parse validates and parses s into a metainfo.HostPort. It is built on
// top of the shape net.SplitHostPort expects (bracketed IPv6, bare
// domain/IPv4 otherwise) but returns a validated uint16 port rather than
// a string, since metainfo.HostPort.Port is typed.
func Parse(s string) (metainfo.HostPort, error) {
	if s == "" {
		return metainfo.HostPort{}, fmt.Errorf("hostport: empty address")
	}

	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return metainfo.HostPort{}, fmt.Errorf("hostport: %q has unterminated IPv6 literal", s)
		}
		host := s[1:end]
		if host == "" {
			return metainfo.HostPort{}, fmt.Errorf("hostport: %q has empty IPv6 literal", s)
		}
		rest := s[end+1:]
		if !strings.HasPrefix(rest, ":") {
			return metainfo.HostPort{}, fmt.Errorf("hostport: %q missing port after IPv6 literal", s)
		}
		port, err := parsePort(rest[1:])
		if err != nil {
			return metainfo.HostPort{}, fmt.Errorf("hostport: %q: %w", s, err)
		}
		return metainfo.HostPort{Host: host, Port: port}, nil
	}

	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return metainfo.HostPort{}, fmt.Errorf("hostport: %q is missing a port", s)
	}
	host, portStr := s[:idx], s[idx+1:]
	if host == "" {
		return metainfo.HostPort{}, fmt.Errorf("hostport: %q has an empty host", s)
	}
	port, err := parsePort(portStr)
	if err != nil {
		return metainfo.HostPort{}, fmt.Errorf("hostport: %q: %w", s, err)
	}
	return metainfo.HostPort{Host: host, Port: port}, nil
}

func parsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	if n == 0 {
		return 0, fmt.Errorf("port must be non-zero")
	}
	return uint16(n), nil
}

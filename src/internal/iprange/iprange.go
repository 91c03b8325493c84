// FILE: src/internal/iprange/iprange.go
package iprange

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ** THIS PROGRAM IS IPV4 ONLY !!**

// Port bounds for specs and connection checks
const (
	MinPort = 0
	MaxPort = 65535
)

// IsValidIP reports whether s is a dotted-quad IPv4 address.
func IsValidIP(s string) bool {
	// net.ParseIP also accepts IPv6 and IPv4-mapped forms
	if strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IsValidIPRange reports whether spec is a single IPv4 address or an
// "A-B" pair of IPv4 addresses. Bound ordering is deliberately not
// checked here; a reversed range is valid and matches nothing.
func IsValidIPRange(spec string) bool {
	start, end, found := strings.Cut(spec, "-")
	if !found {
		return IsValidIP(spec)
	}
	return IsValidIP(start) && IsValidIP(end)
}

// IsValidPortRange reports whether spec is a single port in
// [MinPort, MaxPort] or an "A-B" pair with A < B. Equal bounds are
// rejected; a single-port rule covers that case.
func IsValidPortRange(spec string) bool {
	first, second, found := strings.Cut(spec, "-")
	if !found {
		port, err := strconv.Atoi(spec)
		return err == nil && port >= MinPort && port <= MaxPort
	}
	start, err := strconv.Atoi(first)
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(second)
	if err != nil {
		return false
	}
	return start >= MinPort && end <= MaxPort && start < end
}

// IPToInteger converts a dotted-quad IPv4 address to its big-endian
// numeric value.
func IPToInteger(s string) (uint32, error) {
	if !IsValidIP(s) {
		return 0, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return binary.BigEndian.Uint32(net.ParseIP(s).To4()), nil
}

// WithinIPRange reports whether ip falls inside spec. A single-address
// spec requires numeric equality; an "A-B" spec requires A <= ip <= B
// numerically. A range whose bounds are reversed contains no address.
func WithinIPRange(ip, spec string) bool {
	ipInt, err := IPToInteger(ip)
	if err != nil {
		return false
	}
	first, second, found := strings.Cut(spec, "-")
	if !found {
		specInt, err := IPToInteger(spec)
		if err != nil {
			return false
		}
		return ipInt == specInt
	}
	startInt, err := IPToInteger(first)
	if err != nil {
		return false
	}
	endInt, err := IPToInteger(second)
	if err != nil {
		return false
	}
	return ipInt >= startInt && ipInt <= endInt
}

// WithinPortRange reports whether port falls inside spec, bounds
// inclusive.
func WithinPortRange(port int, spec string) bool {
	first, second, found := strings.Cut(spec, "-")
	if !found {
		specPort, err := strconv.Atoi(spec)
		if err != nil {
			return false
		}
		return port == specPort
	}
	start, err := strconv.Atoi(first)
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(second)
	if err != nil {
		return false
	}
	return port >= start && port <= end
}

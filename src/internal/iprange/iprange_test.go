// FILE: src/internal/iprange/iprange_test.go
package iprange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIP(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"SimpleAddress", "10.0.0.1", true},
		{"Broadcast", "255.255.255.255", true},
		{"Zero", "0.0.0.0", true},
		{"OctetTooLarge", "256.0.0.1", false},
		{"MissingOctet", "10.0.0", false},
		{"ExtraOctet", "10.0.0.1.2", false},
		{"Empty", "", false},
		{"NotAnIP", "not-an-ip", false},
		{"IPv6Rejected", "::1", false},
		{"IPv4MappedIPv6Rejected", "::ffff:10.0.0.1", false},
		{"TrailingGarbage", "10.0.0.1x", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidIP(tc.input))
		})
	}
}

func TestIsValidIPRange(t *testing.T) {
	testCases := []struct {
		name     string
		spec     string
		expected bool
	}{
		{"SingleIP", "192.168.1.1", true},
		{"Range", "10.0.0.0-10.0.0.255", true},
		{"ReversedRangeStillValid", "10.0.0.255-10.0.0.0", true},
		{"EqualBoundsValid", "10.0.0.1-10.0.0.1", true},
		{"BadStart", "10.0.0-10.0.0.255", false},
		{"BadEnd", "10.0.0.0-10.0.0.256", false},
		{"SingleInvalid", "10.0.0", false},
		{"EmptyEnd", "10.0.0.1-", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidIPRange(tc.spec))
		})
	}
}

func TestIsValidPortRange(t *testing.T) {
	testCases := []struct {
		name     string
		spec     string
		expected bool
	}{
		{"SinglePort", "80", true},
		{"PortZero", "0", true},
		{"MaxPort", "65535", true},
		{"PortTooLarge", "65536", false},
		{"NegativePort", "-1", false},
		{"Range", "100-200", true},
		{"FullRange", "0-65535", true},
		{"EqualBoundsRejected", "50-50", false},
		{"ReversedRange", "200-100", false},
		{"EndTooLarge", "100-65536", false},
		{"NonNumeric", "abc", false},
		{"NonNumericEnd", "100-abc", false},
		{"TrailingGarbage", "80x", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidPortRange(tc.spec))
		})
	}
}

func TestIPToInteger(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		testCases := []struct {
			ip       string
			expected uint32
		}{
			{"0.0.0.0", 0},
			{"0.0.0.1", 1},
			{"1.0.0.0", 1 << 24},
			{"10.0.0.1", 0x0A000001},
			{"255.255.255.255", 0xFFFFFFFF},
		}
		for _, tc := range testCases {
			v, err := IPToInteger(tc.ip)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, v, "ip %s", tc.ip)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		_, err := IPToInteger("10.0.0")
		assert.Error(t, err)
		_, err = IPToInteger("::1")
		assert.Error(t, err)
	})
}

func TestWithinIPRange(t *testing.T) {
	testCases := []struct {
		name     string
		ip       string
		spec     string
		expected bool
	}{
		{"SingleMatch", "10.0.0.1", "10.0.0.1", true},
		{"SingleMismatch", "10.0.0.2", "10.0.0.1", false},
		{"InsideRange", "10.0.0.128", "10.0.0.0-10.0.0.255", true},
		{"RangeStartInclusive", "10.0.0.0", "10.0.0.0-10.0.0.255", true},
		{"RangeEndInclusive", "10.0.0.255", "10.0.0.0-10.0.0.255", true},
		{"JustOutsideRange", "10.0.1.0", "10.0.0.0-10.0.0.255", false},
		{"OctetBoundary", "1.2.3.4", "1.2.2.0-1.2.4.0", true},
		{"ReversedRangeMatchesNothing", "10.0.0.128", "10.0.0.255-10.0.0.0", false},
		{"ReversedRangeNotEvenBounds", "10.0.0.255", "10.0.0.255-10.0.0.0", false},
		{"InvalidIP", "10.0.0", "10.0.0.0-10.0.0.255", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WithinIPRange(tc.ip, tc.spec))
		})
	}
}

func TestWithinPortRange(t *testing.T) {
	testCases := []struct {
		name     string
		port     int
		spec     string
		expected bool
	}{
		{"SingleMatch", 80, "80", true},
		{"SingleMismatch", 81, "80", false},
		{"InsideRange", 150, "100-200", true},
		{"RangeStartInclusive", 100, "100-200", true},
		{"RangeEndInclusive", 200, "100-200", true},
		{"JustAboveRange", 201, "100-200", false},
		{"JustBelowRange", 99, "100-200", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WithinPortRange(tc.port, tc.spec))
		})
	}
}

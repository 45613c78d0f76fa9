package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"IPv4 zeroes last octet", "203.0.113.47", "203.0.113.0"},
		{"IPv4 loopback", "127.0.0.1", "127.0.0.0"},
		{"IPv6 keeps /48 prefix", "2001:db8:85a3::8a2e:370:7334", "2001:0db8:85a3::"},
		{"empty is unknown", "", "unknown"},
		{"unknown stays unknown", "unknown", "unknown"},
		{"garbage is invalid", "not-an-ip", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnonymizeIP(tt.in))
		})
	}
}

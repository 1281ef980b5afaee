package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"8.8.8.8", "8.8.8.8"},
		{"  10.0.0.1\t", "10.0.0.1"},
		{"192.168.001.001", "192.168.1.1"},
		{"010.000.000.001", "10.0.0.1"},
		{"2001:db8::1", "2001:db8::1"},
		{"[::1]", "::1"},
		{"[fe80::1%eth0]", "fe80::1%eth0"},
		{"::ffff:10.0.0.1", "::ffff:10.0.0.1"},
		{"00000000000000000000000000000001", "::1"},
		{"ff0e0000000000000000000000000001", "ff0e::1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAddr(tt.input)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.want), got)
		})
	}
}

func TestParseAddr_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"[]",
		"invalid",
		"256.0.0.1",
		"1.2.3",
		"1.2.3.4.5",
		"0001.2.3.4",
		"1..2.3",
		"gggggggggggggggggggggggggggggggg",
		"0000000000000000000000000000001",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseAddr(s)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestParseIP(t *testing.T) {
	ip, err := ParseIP("::ffff:192.0.0.9")
	require.NoError(t, err)
	assert.True(t, ip.Is4())
	assert.True(t, ip.IsGlobal())

	ip, err = ParseIP("ff02::1")
	require.NoError(t, err)
	assert.True(t, ip.Is6())
	assert.False(t, ip.IsGlobal())

	_, err = ParseIP("nope")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	assert.Equal(t, IPFrom4(IPv4{1, 1, 1, 1}), MustParseIP("1.1.1.1"))
	assert.Panics(t, func() { MustParseIP("nope") })
}

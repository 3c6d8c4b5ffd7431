package bitblock

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV4(t *testing.T) {
	tests := []struct {
		name      string
		ip        uint32
		prefix    int
		wantStart uint32
		wantEnd   uint32
	}{
		{"single address", 0x7F000001, 32, 0x7F000001, 0x7F000001},
		{"/8 block", 0x7F000000, 8, 0x7F000000, 0x7FFFFFFF},
		{"full space", 0x7F000000, 0, 0, 0xFFFFFFFF},
		{"host bits cleared", 0x7F000003, 29, 0x7F000000, 0x7F000007},
		{"/16 with host bits", 0x7F000100, 16, 0x7F000000, 0x7F00FFFF},
		{"/31 pair", 0xC0A80001, 31, 0xC0A80000, 0xC0A80001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := V4(tt.ip, tt.prefix)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestV6(t *testing.T) {
	mustBig := func(s string) *big.Int {
		v, ok := new(big.Int).SetString(s, 16)
		require.True(t, ok)
		return v
	}

	tests := []struct {
		name      string
		ip        string
		prefix    int
		wantStart string
		wantEnd   string
	}{
		{
			"2001:db8::/48",
			"20010db8000000000000000000000000", 48,
			"20010db8000000000000000000000000",
			"20010db80000ffffffffffffffffffff",
		},
		{
			"full space",
			"20010db8000000000000000000000000", 0,
			"0",
			"ffffffffffffffffffffffffffffffff",
		},
		{
			"single address",
			"1", 128,
			"1",
			"1",
		},
		{
			"host bits cleared",
			"fe80000000000000aaaaaaaaaaaaaaaa", 10,
			"fe800000000000000000000000000000",
			"febfffffffffffffffffffffffffffff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := V6(mustBig(tt.ip), tt.prefix)
			assert.Zero(t, start.Cmp(mustBig(tt.wantStart)))
			assert.Zero(t, end.Cmp(mustBig(tt.wantEnd)))
		})
	}
}

func TestV6_InputNotMutated(t *testing.T) {
	ip := big.NewInt(0x7F000001)
	V6(ip, 8)
	assert.Equal(t, int64(0x7F000001), ip.Int64())
}

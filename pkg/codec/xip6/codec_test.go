package xip6

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}

func TestValidateIP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"::", true},
		{"::1", true},
		{"2001:db8:85a3::8a2e:370:7334", true},
		{"2001:db8:85a3:0:0:8a2e:370:7334", true},
		{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", true},
		{"2001:db8::1:0:0:1", true},
		{"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", true},
		{"1080:0:0:0:8:800:200C:417A", true}, // 纯十六进制接受大写
		{"::ffff:192.0.2.128", true},
		{"::ffff:127.1", true}, // IPv4 后缀允许部分形式
		{"::ff::ff", false},    // 两处 "::"
		{"::fffff", false},
		{"::ffff:192.0.2.300", false},
		{"1", false},
		{"127.0.0.1", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateIP(tt.in))
		})
	}
}

func TestToLong(t *testing.T) {
	tests := []struct {
		in   string
		want string // 十六进制
	}{
		{"::", "0"},
		{"::1", "1"},
		{"2001:db8:85a3::8a2e:370:7334", "20010db885a3000000008a2e03707334"},
		{"2001:db8:85a3:0:0:8a2e:370:7334", "20010db885a3000000008a2e03707334"},
		{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", "20010db885a3000000008a2e03707334"},
		{"2001:db8::1:0:0:1", "20010db8000000000001000000000001"},
		{"::ffff:192.0.2.128", "ffffc0000280"},
		{"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", "ffffffffffffffffffffffffffffffff"},
		{"1080:0:0:0:8:800:200C:417A", "108000000000000000080800200c417a"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ToLong(tt.in)
			require.NoError(t, err)
			assert.Zero(t, v.Cmp(mustHex(t, tt.want)), "got %x", v)
		})
	}

	_, err := ToLong("ff::ff::ff")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestFromLong(t *testing.T) {
	tests := []struct {
		in   string // 十六进制
		want string
	}{
		{"7f000001", "::7f00:1"},
		{"20010db8000000000001000000000001", "2001:db8::1:0:0:1"},
		{"0", "::"},
		{"1", "::1"},
		{"ffffffffffffffffffffffffffffffff", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
		// 并列零段取最左侧压缩
		{"20010db8000000010000000000000001", "2001:db8:0:1::1"},
		// 长度 1 的零段不压缩
		{"20010db8000100010001000100010000", "2001:db8:1:1:1:1:1:0"},
		// 尾部零段压缩
		{"20010db8000000000000000000000000", "2001:db8::"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := FromLong(mustHex(t, tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}

	_, err := FromLong(nil)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = FromLong(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	tooBig := new(big.Int).Add(MaxIP, big.NewInt(1))
	_, err = FromLong(tooBig)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestLongRoundTrip(t *testing.T) {
	inputs := []string{
		"::", "::1", "2001:db8::1:0:0:1", "fe80::",
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"1:2:3:4:5:6:7:8", "::ffff:0:0",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := ToLong(in)
			require.NoError(t, err)
			s, err := FromLong(v)
			require.NoError(t, err)
			assert.Equal(t, in, s)

			back, err := ToLong(s)
			require.NoError(t, err)
			assert.Zero(t, v.Cmp(back))
		})
	}
}

func TestValidateCIDR(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"::/128", true},
		{"::/0", true},
		{"fc00::/7", true},
		{"::ffff:0:0/96", true},
		{"::", false},
		{"::/129", false},
		{"::/1290", false},
		{"::ffff:1.2.3.4/96", false}, // CIDR 形式不接受点分后缀
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCIDR(tt.in))
		})
	}
}

func TestCIDRToBlock(t *testing.T) {
	tests := []struct {
		cidr      string
		wantStart string
		wantEnd   string
	}{
		{"2001:db8::/48", "2001:db8::", "2001:db8:0:ffff:ffff:ffff:ffff:ffff"},
		{"::/0", "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
		{"::1/128", "::1", "::1"},
		{"fe80::1/10", "fe80::", "febf:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}
	for _, tt := range tests {
		t.Run(tt.cidr, func(t *testing.T) {
			start, end, err := CIDRToBlock(tt.cidr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}

	_, _, err := CIDRToBlock("::")
	assert.ErrorIs(t, err, ErrInvalidCIDR)
}

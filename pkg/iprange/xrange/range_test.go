package xrange

import (
	"math/big"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		wantStart string
		wantEnd   string
		wantVer   Version
	}{
		{"127/24", "127.0.0.0", "127.0.0.255", V4},
		{"127/30", "127.0.0.0", "127.0.0.3", V4},
		{"127/255.255.255.0", "127.0.0.0", "127.0.0.255", V4},
		{"10/8", "10.0.0.0", "10.255.255.255", V4},
		{"127.0.0.1", "127.0.0.1", "127.0.0.1", V4},
		{"2001:db8::/48", "2001:db8::", "2001:db8:0:ffff:ffff:ffff:ffff:ffff", V6},
		{"fe80::/10", "fe80::", "febf:ffff:ffff:ffff:ffff:ffff:ffff:ffff", V6},
		{"::ffff:0:0/96", "::ffff:0:0", "::ffff:ffff:ffff", V6},
		// 数值落在 32 位值域内的 IPv6 文本按量级归为 V4
		{"::1", "0.0.0.1", "0.0.0.1", V4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.StartIP())
			assert.Equal(t, tt.wantEnd, r.EndIP())
			assert.Equal(t, tt.wantVer, r.Version())
		})
	}

	for _, in := range []string{"invalid", "", "127.0.0.1/33", "256.0.0.1", "::/129"} {
		t.Run("invalid/"+in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrUnrecognizedFormat)
		})
	}
}

func TestNewSwapsEndpoints(t *testing.T) {
	r, err := New("127.0.0.255", "127.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.0", r.StartIP())
	assert.Equal(t, "127.0.0.255", r.EndIP())

	_, err = New("invalid", "127.0.0.1")
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
	_, err = New("127.0.0.1", "invalid")
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestFromBigInts(t *testing.T) {
	r, err := FromBigInts(big.NewInt(256), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.1", r.StartIP())
	assert.Equal(t, "0.0.1.0", r.EndIP())

	// 入参构造后修改不影响区间
	a := big.NewInt(10)
	r, err = FromBigInts(a, a)
	require.NoError(t, err)
	a.SetInt64(99)
	assert.Equal(t, "0.0.0.10", r.StartIP())

	_, err = FromBigInts(nil, big.NewInt(1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = FromBigInts(big.NewInt(-1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = FromBigInts(big.NewInt(0), tooBig)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestLen(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Int
	}{
		{"127.0.0.1", big.NewInt(1)},
		{"127/31", big.NewInt(2)},
		{"127/22", big.NewInt(1024)},
		{"fe80::/10", new(big.Int).Lsh(big.NewInt(1), 118)},
		{"::/0", new(big.Int).Lsh(big.NewInt(1), 128)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := MustParse(tt.in)
			assert.Zero(t, tt.want.Cmp(r.Len()))
		})
	}

	n, ok := MustParse("127/22").LenUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(1024), n)

	_, ok = MustParse("::/0").LenUint64()
	assert.False(t, ok)
}

func TestEqualAndHash(t *testing.T) {
	a := MustParse("127.0.0.0/8")
	b, err := New("127.0.0.0", "127.255.255.255")
	require.NoError(t, err)
	c := MustParse("10/8")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.NotEqual(t, b.Hash(), c.Hash())

	// 分类不参与比较：IPv6 文本与 IPv4 文本构造的同一数值区间相等
	assert.True(t, MustParse("::1").Equal(MustParse("0.0.0.1")))
}

func TestString(t *testing.T) {
	assert.Equal(t, `("127.0.0.0", "127.0.0.255")`, MustParse("127/24").String())
	assert.Equal(t, `("127.0.0.1", "127.0.0.1")`, MustParse("127.0.0.1").String())
}

func TestZeroValue(t *testing.T) {
	var r Range
	assert.Equal(t, V4, r.Version())
	assert.Equal(t, "0.0.0.0", r.StartIP())
	assert.Zero(t, big.NewInt(1).Cmp(r.Len()))
}

func TestToIPRange(t *testing.T) {
	r := MustParse("127/24")
	ipr := r.ToIPRange()
	assert.Equal(t, netip.MustParseAddr("127.0.0.0"), ipr.From())
	assert.Equal(t, netip.MustParseAddr("127.0.0.255"), ipr.To())
	assert.True(t, ipr.From().Is4())

	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("127.0.0.0/24")}, r.Prefixes())

	r6 := MustParse("2001:db8::/48")
	assert.Equal(t,
		[]netip.Prefix{netip.MustParsePrefix("2001:db8::/48")}, r6.Prefixes())
	assert.True(t, r6.ToIPRange().From().Is6())
}

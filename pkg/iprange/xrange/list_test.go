package xrange

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	l, err := NewList(
		"127.0.0.1",
		"10/8",
		Pair{"192.168.0.1", "192.168.255.255"},
		MustParse("2001:db8::/48"),
	)
	require.NoError(t, err)
	require.Len(t, l.Ranges(), 4)

	assert.True(t, mustListContain(t, l, "127.0.0.1"))
	assert.True(t, mustListContain(t, l, "10.10.10.10"))
	assert.True(t, mustListContain(t, l, "192.168.192.168"))
	assert.True(t, mustListContain(t, l, "2001:db8::1"))
	assert.False(t, mustListContain(t, l, "172.16.0.1"))
	assert.True(t, mustListContain(t, l, 2130706433))

	_, err = NewList("127.0.0.1", "invalid")
	require.ErrorIs(t, err, ErrUnrecognizedFormat)
	assert.Contains(t, err.Error(), "item 1")

	_, err = NewList(42)
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func mustListContain(t *testing.T, l *List, item any) bool {
	t.Helper()
	ok, err := l.Contains(item)
	require.NoError(t, err)
	return ok
}

func TestListContainsProbeType(t *testing.T) {
	l, err := NewList("127/8")
	require.NoError(t, err)
	_, err = l.Contains(1.5)
	assert.ErrorIs(t, err, ErrProbeType)
}

func TestListLen(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  *big.Int
	}{
		{"single", []any{"127.0.0.1"}, big.NewInt(1)},
		{"two", []any{"127.0.0.1", "10/31"}, big.NewInt(3)},
		{"cidr", []any{"192.168.0.0/22"}, big.NewInt(1024)},
		// 重叠区间不合并，各自计数
		{"overlap", []any{"10/31", "10/31"}, big.NewInt(4)},
		{"v6", []any{"fe80::/10", "127.0.0.1"},
			new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 118), big.NewInt(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewList(tt.items...)
			require.NoError(t, err)
			assert.Zero(t, tt.want.Cmp(l.Len()))
		})
	}
}

func TestListIter(t *testing.T) {
	l, err := NewList("127.0.0.1", "10/31")
	require.NoError(t, err)
	want := []string{"127.0.0.1", "10.0.0.0", "10.0.0.1"}
	assert.Equal(t, want, drain(l.Iter()))

	// 可重复迭代，两次序列一致
	assert.Equal(t, want, drain(l.Iter()))

	empty, err := NewList()
	require.NoError(t, err)
	_, ok := empty.Iter().Next()
	assert.False(t, ok)
	assert.Zero(t, empty.Len().Sign())
}

func TestListEqualAndHash(t *testing.T) {
	a, err := NewList("127.0.0.1", "10/8")
	require.NoError(t, err)
	b, err := NewList("127.0.0.1", "10/8")
	require.NoError(t, err)
	reversed, err := NewList("10/8", "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// 次序敏感：颠倒成员得到不同的集合
	assert.False(t, a.Equal(reversed))
	assert.NotEqual(t, a.Hash(), reversed.Hash())

	assert.False(t, a.Equal(nil))
}

func TestListString(t *testing.T) {
	l, err := NewList("127.0.0.1", "10/8")
	require.NoError(t, err)
	assert.Equal(t,
		`(("127.0.0.1", "127.0.0.1"), ("10.0.0.0", "10.255.255.255"))`,
		l.String())
}

func TestListRangesCopy(t *testing.T) {
	l, err := NewList("127.0.0.1", "10/8")
	require.NoError(t, err)
	got := l.Ranges()
	got[0] = MustParse("192.168/16")
	assert.Equal(t, "127.0.0.1", l.Ranges()[0].StartIP())
}

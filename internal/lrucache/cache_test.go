package lrucache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	_, err := New[string, bool](0, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = New[string, bool](10, -time.Second)
	assert.ErrorIs(t, err, ErrInvalidTTL)

	c, err := New[string, bool](10, time.Minute)
	require.NoError(t, err)
	c.Close()
}

func TestGetSet(t *testing.T) {
	c, err := New[string, int](4, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
}

func TestEviction(t *testing.T) {
	c, err := New[int, int](2, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, c.Set(1, 1))
	assert.False(t, c.Set(2, 2))
	// 容量已满，写入第三个条目淘汰最旧的
	assert.True(t, c.Set(3, 3))
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	c, err := New[string, int](4, time.Minute)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Close()
	c.Close() // 幂等

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.False(t, c.Set("b", 2))
	assert.Zero(t, c.Len())
}

func TestStopJanitorUpstreamStruct(t *testing.T) {
	// 守住对上游未导出字段的依赖：结构变化时这里先失败
	c, err := New[string, int](4, time.Minute)
	require.NoError(t, err)
	assert.True(t, stopJanitor(c.lru))
	c.closed.Store(true)
}

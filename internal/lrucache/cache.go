// Package lrucache 是对 expirable LRU 的薄封装，补上可靠的关闭语义。
package lrucache

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrInvalidSize 表示缓存容量配置无效。
var ErrInvalidSize = errors.New("lrucache: size must be greater than 0")

// ErrInvalidTTL 表示 TTL 配置无效。
var ErrInvalidTTL = errors.New("lrucache: TTL must not be negative")

// Cache 是带 TTL 的并发安全 LRU 缓存。
// 必须通过 [New] 创建；Close 后读操作返回零值/false，写操作静默忽略。
type Cache[K comparable, V any] struct {
	lru       *expirable.LRU[K, V]
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 创建容量为 size、过期时间为 ttl 的缓存。
// ttl 为 0 表示永不过期。
func New[K comparable, V any](size int, ttl time.Duration) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if ttl < 0 {
		return nil, ErrInvalidTTL
	}
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](size, nil, ttl)}, nil
}

// Get 获取缓存值。键不存在、已过期或缓存已关闭时返回零值和 false。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.closed.Load() {
		return value, false
	}
	return c.lru.Get(key)
}

// Set 写入缓存值。返回值表示是否触发了 LRU 淘汰。
func (c *Cache[K, V]) Set(key K, value V) bool {
	if c.closed.Load() {
		return false
	}
	return c.lru.Add(key, value)
}

// Len 返回当前条目数，可能包含已过期但尚未被后台清理的条目。
func (c *Cache[K, V]) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Close 清空缓存并停止 TTL 清理 goroutine，幂等。
func (c *Cache[K, V]) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopJanitor(c.lru)
	})
}

// stopJanitor 停止 expirable.LRU 的后台清理 goroutine。
//
// golang-lru v2.0.7 在 ttl > 0 时启动清理 goroutine，但没有公开的停止
// 入口（上游把 Close 注释掉了）。这里经 reflect + unsafe 取到内部的
// done 通道（chan struct{}）并关闭，让 goroutine 退出。上游结构变化
// 或通道已关闭时降级为无操作并返回 false。升级 golang-lru 后若上游
// 提供了公开的 Close，应改用上游实现并移除本函数。
func stopJanitor(lru any) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	done := v.Elem().FieldByName("done")
	if !done.IsValid() || done.IsNil() {
		return false
	}
	if done.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}
	ch := *(*chan struct{})(unsafe.Pointer(done.UnsafeAddr())) //nolint:gosec // 有意访问内部字段
	close(ch)
	return true
}

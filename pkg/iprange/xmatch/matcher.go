package xmatch

import (
	"errors"
	"fmt"
	"math/big"
	"net/netip"
	"time"

	"go4.org/netipx"

	"github.com/omeyang/iptools/internal/lrucache"
	"github.com/omeyang/iptools/pkg/iprange/xrange"
)

// ErrNilList 表示用 nil 集合构造匹配器。
var ErrNilList = errors.New("xmatch: nil range list")

var (
	maxV4    = new(big.Int).SetUint64(0xFFFF_FFFF)
	mappedLo = new(big.Int).Lsh(big.NewInt(0xFFFF), 32)
)

// Option 定义匹配器可选配置函数类型。
type Option func(*options)

type options struct {
	cacheSize int
	cacheTTL  time.Duration
}

// WithCache 启用文本探针的结果缓存。
// size 为最大条目数，ttl 为 0 表示永不过期。
func WithCache(size int, ttl time.Duration) Option {
	return func(o *options) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// Matcher 把区间集合编译为合并后的 IPSet 做快速成员测试。
// 构造后不可变（缓存除外），可在并发调用间共享。
type Matcher struct {
	list  *xrange.List
	set   *netipx.IPSet
	cache *lrucache.Cache[string, bool]
}

// New 编译 list 的成员区间并构造匹配器。
func New(list *xrange.List, opts ...Option) (*Matcher, error) {
	if list == nil {
		return nil, ErrNilList
	}
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	set, err := compile(list)
	if err != nil {
		return nil, fmt.Errorf("xmatch: compile ranges: %w", err)
	}

	m := &Matcher{list: list, set: set}
	if o.cacheSize > 0 {
		cache, err := lrucache.New[string, bool](o.cacheSize, o.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("xmatch: probe cache: %w", err)
		}
		m.cache = cache
	}
	return m, nil
}

// compile 把成员区间镜像写入 IPSet，保证查找口径与逐区间比较一致：
//   - V4 区间写入 4 字节表示，并写入其 IPv4 映射块中的像，
//     使映射形式的探针命中降级比较能命中的值；
//   - V6 区间写入 16 字节表示；落在 32 位值域内的部分另写入
//     4 字节表示，使小数值探针与原始比较一致。
func compile(list *xrange.List) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range list.Ranges() {
		start, end := r.Start(), r.End()
		if r.Version() == xrange.V4 {
			b.AddRange(netipx.IPRangeFrom(addr4(start), addr4(end)))
			b.AddRange(netipx.IPRangeFrom(
				addr16(new(big.Int).Add(mappedLo, start)),
				addr16(new(big.Int).Add(mappedLo, end))))
			continue
		}
		b.AddRange(netipx.IPRangeFrom(addr16(start), addr16(end)))
		if start.Cmp(maxV4) <= 0 {
			hi := end
			if end.Cmp(maxV4) > 0 {
				hi = maxV4
			}
			b.AddRange(netipx.IPRangeFrom(addr4(start), addr4(hi)))
		}
	}
	return b.IPSet()
}

func addr4(v *big.Int) netip.Addr {
	var b [4]byte
	v.FillBytes(b[:])
	return netip.AddrFrom4(b)
}

func addr16(v *big.Int) netip.Addr {
	var b [16]byte
	v.FillBytes(b[:])
	return netip.AddrFrom16(b)
}

// Contains 报告探针是否落在任一成员区间内。
// 探针规则与 [xrange.List.Contains] 一致；文本探针在启用缓存时
// 复用最近的查找结果。
func (m *Matcher) Contains(item any) (bool, error) {
	key, cacheable := item.(string)
	if cacheable && m.cache != nil {
		if ok, hit := m.cache.Get(key); hit {
			return ok, nil
		}
	}

	v, err := xrange.ResolveProbe(item)
	if err != nil {
		return false, err
	}
	ok := m.containsValue(v)

	if cacheable && m.cache != nil {
		m.cache.Set(key, ok)
	}
	return ok, nil
}

// ContainsAddr 是 netip 探针的便捷入口，语义与 [Matcher.Contains]
// 对相应文本探针的结果一致：4 字节地址按其 32 位数值匹配，
// 16 字节地址（含 4-in-6 映射形式）按其 128 位数值匹配。
func (m *Matcher) ContainsAddr(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if addr.Is4() {
		b := addr.As4()
		return m.containsValue(new(big.Int).SetBytes(b[:]))
	}
	b := addr.As16()
	return m.containsValue(new(big.Int).SetBytes(b[:]))
}

// containsValue 按数值量级选择探针表示后查询 IPSet。
// 负值或超出 128 位值域的整数探针必然不在任何区间内。
func (m *Matcher) containsValue(v *big.Int) bool {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return false
	}
	if v.Cmp(maxV4) <= 0 {
		return m.set.Contains(addr4(v))
	}
	return m.set.Contains(addr16(v))
}

// List 返回编译来源的区间集合。
func (m *Matcher) List() *xrange.List {
	return m.list
}

// Prefixes 返回合并后恰好覆盖全部成员（含镜像）的前缀集合。
func (m *Matcher) Prefixes() []netip.Prefix {
	return m.set.Prefixes()
}

// Close 释放探针缓存，幂等；未启用缓存时为无操作。
func (m *Matcher) Close() {
	if m.cache != nil {
		m.cache.Close()
	}
}

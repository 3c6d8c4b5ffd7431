package xrange

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// List 是区间的有序集合：保持插入顺序，不去重，不合并重叠区间。
// 构造后不可变，可安全地在并发读取间共享。
type List struct {
	ranges []Range
}

// NewList 由一组条目构造集合。每个条目独立转换：
// 地址文本（任何 [Parse] 接受的形式）、[Range] 或 [Pair]；
// 任一条目转换失败则整体构造失败。
//
//	NewList("127.0.0.1", "10/8", Pair{"192.168.0.1", "192.168.255.255"})
func NewList(items ...any) (*List, error) {
	ranges := make([]Range, 0, len(items))
	for i, item := range items {
		var (
			r   Range
			err error
		)
		switch v := item.(type) {
		case string:
			r, err = Parse(v)
		case Range:
			r = v
		case Pair:
			r, err = New(v.Start, v.End)
		default:
			err = fmt.Errorf("%w: %T", ErrUnrecognizedFormat, item)
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		ranges = append(ranges, r)
	}
	return &List{ranges: ranges}, nil
}

// Ranges 返回成员区间的副本，保持插入顺序。
func (l *List) Ranges() []Range {
	out := make([]Range, len(l.ranges))
	copy(out, l.ranges)
	return out
}

// Contains 报告探针是否落在任一成员区间内，首个命中即返回。
// 探针规则与 [Range.Contains] 一致。
func (l *List) Contains(item any) (bool, error) {
	for _, r := range l.ranges {
		ok, err := r.Contains(item)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Len 返回所有成员区间的地址数之和。
// 重叠区间不合并，重叠部分按成员各自计数。
func (l *List) Len() *big.Int {
	n := new(big.Int)
	for _, r := range l.ranges {
		n.Add(n, r.Len())
	}
	return n
}

// Equal 报告两个集合是否含有完全相同且次序一致的成员区间。
// 成员次序参与比较：颠倒构造参数会得到不相等的集合。
func (l *List) Equal(other *List) bool {
	if other == nil || len(l.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range l.ranges {
		if r != other.ranges[i] {
			return false
		}
	}
	return true
}

// Hash 返回成员区间有序元组的 64 位结构化哈希。
// 次序敏感：仅当成员及其次序完全一致时哈希才相同。
func (l *List) Hash() uint64 {
	d := xxhash.New()
	for _, r := range l.ranges {
		d.Write(r.start[:])
		d.Write(r.end[:])
	}
	return d.Sum64()
}

// String 以成员地址对元组的形式渲染集合。
func (l *List) String() string {
	parts := make([]string, len(l.ranges))
	for i, r := range l.ranges {
		parts[i] = r.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Iter 返回按成员次序串接各区间游标的新游标。
// 成员间不合并、不去重、不排序，仅在单个成员内保证升序。
func (l *List) Iter() *ListCursor {
	return &ListCursor{remaining: l.Ranges()}
}

// ListCursor 是集合的串接迭代游标。
type ListCursor struct {
	remaining []Range
	cur       *Cursor
}

// Next 产出下一个地址。所有成员耗尽后恒返回 ("", false)。
func (c *ListCursor) Next() (string, bool) {
	for {
		if c.cur == nil {
			if len(c.remaining) == 0 {
				return "", false
			}
			c.cur = c.remaining[0].Iter()
			c.remaining = c.remaining[1:]
		}
		if s, ok := c.cur.Next(); ok {
			return s, true
		}
		c.cur = nil
	}
}

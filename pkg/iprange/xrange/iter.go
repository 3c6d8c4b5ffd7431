package xrange

import "math/big"

// Cursor 是区间的惰性迭代游标，按升序逐个产出地址文本。
// 每次 [Range.Iter] 调用返回独立的新游标，迭代随时可弃置，
// 游标不持有任何外部资源。
type Cursor struct {
	next *big.Int
	end  *big.Int
	v4   bool
	done bool
}

// Iter 返回从起点开始的新游标。
//
//	c := MustParse("127/31").Iter()
//	c.Next() // "127.0.0.0", true
//	c.Next() // "127.0.0.1", true
//	c.Next() // "", false
func (r Range) Iter() *Cursor {
	return &Cursor{
		next: from16(r.start),
		end:  from16(r.end),
		v4:   r.Version() == V4,
	}
}

// Next 产出下一个地址。区间耗尽后恒返回 ("", false)。
func (c *Cursor) Next() (string, bool) {
	if c.done {
		return "", false
	}
	s := render(c.next, c.v4)
	if c.next.Cmp(c.end) == 0 {
		c.done = true
	} else {
		c.next.Add(c.next, big1)
	}
	return s, true
}

package xrange

import (
	"fmt"
	"math/big"
)

// At 返回区间内偏移 i 处的地址文本，负下标从终点倒数。
// 越界返回 [ErrIndexOutOfRange]。
//
//	r, _ := Parse("127/24")
//	r.At(0)  // "127.0.0.0"
//	r.At(-1) // "127.0.0.255"
func (r Range) At(i int64) (string, error) {
	return r.AtBig(big.NewInt(i))
}

// AtBig 是 [Range.At] 的大整数版本，下标可覆盖 2^128 规模的区间。
func (r Range) AtBig(i *big.Int) (string, error) {
	if i == nil {
		return "", fmt.Errorf("%w: nil index", ErrIndexOutOfRange)
	}
	n := r.Len()
	idx := new(big.Int).Set(i)
	if idx.Sign() < 0 {
		idx.Add(idx, n)
	}
	if idx.Sign() < 0 || idx.Cmp(n) >= 0 {
		return "", fmt.Errorf("%w: %v", ErrIndexOutOfRange, i)
	}
	v := idx.Add(idx, from16(r.start))
	return render(v, r.Version() == V4), nil
}

// Slice 返回半开子区间 [start, stop) 对应的新区间。
//
// start 与 stop 为 nil 表示未设置，分别取 0 与区间长度；负值从终点
// 倒数后钳到有效界内；start 不小于长度或 stop 超过长度时返回
// [ErrIndexOutOfRange]。stop 为 0 等同于未设置。
// step 仅支持 1（0 视为未设置），其余步长返回 [ErrSliceStep]。
//
//	r, _ := New("127.0.0.1", "127.255.255.255")
//	r.Slice(nil, nil, 1)                         // 整个区间
//	r.Slice(big.NewInt(1), nil, 1)               // ("127.0.0.2", ...)
//	r.Slice(big.NewInt(0), big.NewInt(-1), 1)    // (..., "127.255.255.254")
//	r.Slice(nil, nil, 2)                         // ErrSliceStep
func (r Range) Slice(start, stop *big.Int, step int64) (Range, error) {
	if step != 0 && step != 1 {
		return Range{}, fmt.Errorf("%w: %d", ErrSliceStep, step)
	}
	n := r.Len()

	lo := new(big.Int)
	if start != nil {
		lo.Set(start)
	}
	if lo.Sign() < 0 {
		if lo.Add(lo, n); lo.Sign() < 0 {
			lo.SetInt64(0)
		}
	}
	if lo.Cmp(n) >= 0 {
		return Range{}, fmt.Errorf("%w: start %v", ErrIndexOutOfRange, start)
	}

	hi := new(big.Int).Set(n)
	if stop != nil && stop.Sign() != 0 {
		hi.Set(stop)
	}
	if hi.Sign() < 0 {
		if hi.Add(hi, n); hi.Cmp(lo) < 0 {
			hi.Set(lo)
		}
	}
	if hi.Cmp(n) > 0 {
		return Range{}, fmt.Errorf("%w: stop %v", ErrIndexOutOfRange, stop)
	}

	base := from16(r.start)
	a := new(big.Int).Add(base, lo)
	b := new(big.Int).Add(base, hi)
	b.Sub(b, big1)
	// 端点颠倒（空切片场景）由构造器的自动交换吸收
	return FromBigInts(a, b)
}

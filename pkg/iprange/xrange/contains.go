package xrange

import (
	"fmt"
	"math/big"
)

// IPv4 映射块 ::ffff:0:0/96 的端点值。
var (
	mappedLo = new(big.Int).Lsh(big.NewInt(0xFFFF), 32)
	mappedHi = new(big.Int).SetUint64(0xFFFF_FFFF_FFFF)
	low32    = new(big.Int).SetUint64(0xFFFF_FFFF)
)

// ResolveProbe 将成员测试的探针归一化为 128 位整数。
// 接受地址文本或各种整数；其余类型（以及无法解析的文本）
// 返回 [ErrProbeType]。返回值是新分配的，调用方可自由修改。
func ResolveProbe(item any) (*big.Int, error) {
	switch p := item.(type) {
	case string:
		v, err := parseAddr(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrProbeType, p)
		}
		return v, nil
	case int:
		return big.NewInt(int64(p)), nil
	case int64:
		return big.NewInt(p), nil
	case uint:
		return new(big.Int).SetUint64(uint64(p)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(p)), nil
	case uint64:
		return new(big.Int).SetUint64(p), nil
	case *big.Int:
		if p == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrProbeType)
		}
		return new(big.Int).Set(p), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrProbeType, item)
	}
}

// downcastMapped 将 IPv4 映射地址降级为其低 32 位的 IPv4 值，
// 其余值原样返回。仅对 V4 分类的区间调用；V6 区间从不降级探针。
func downcastMapped(v *big.Int) *big.Int {
	if v.Cmp(mappedLo) >= 0 && v.Cmp(mappedHi) <= 0 {
		return new(big.Int).And(v, low32)
	}
	return v
}

// Contains 报告探针是否落在区间内。探针可以是地址文本或整数；
// V4 区间额外接受 IPv4 映射形式的探针并降级比较。
// 探针类型不合法时返回 [ErrProbeType]。
//
//	r, _ := New("127.0.0.1", "127.255.255.255")
//	r.Contains("127.127.127.127")          // true
//	r.Contains("::ffff:127.127.127.127")   // true
//	r.Contains(uint32(2130706433))         // true
//	r.Contains("10.0.0.1")                 // false
func (r Range) Contains(item any) (bool, error) {
	v, err := ResolveProbe(item)
	if err != nil {
		return false, err
	}
	if r.Version() == V4 {
		v = downcastMapped(v)
	}
	return from16(r.start).Cmp(v) <= 0 && v.Cmp(from16(r.end)) <= 0, nil
}

// Index 返回探针相对起点的零基偏移。
// 探针不在区间内时返回 [ErrNotInRange]，错误信息携带归一化后的地址文本。
func (r Range) Index(item any) (*big.Int, error) {
	v, err := ResolveProbe(item)
	if err != nil {
		return nil, err
	}
	if r.Version() == V4 {
		v = downcastMapped(v)
	}
	offset := new(big.Int).Sub(v, from16(r.start))
	if offset.Sign() >= 0 && offset.Cmp(r.Len()) < 0 {
		return offset, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotInRange, renderProbe(v))
}

// renderProbe 按探针自身的量级渲染地址文本；
// 超出 128 位值域的整数探针退回十进制表示。
func renderProbe(v *big.Int) string {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return v.String()
	}
	return render(v, fitsV4(to16(v)))
}

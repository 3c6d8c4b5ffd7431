package xrange

import (
	"fmt"
	"math/big"

	"github.com/omeyang/iptools/pkg/codec/xip4"
	"github.com/omeyang/iptools/pkg/codec/xip6"
)

// Pair 是构造区间的端点对变体，两端均为地址文本。
type Pair struct {
	Start, End string
}

// parseAddr 将单个地址文本解析为 128 位整数，先按 IPv4 语法尝试，
// 再按 IPv6 语法尝试。
func parseAddr(s string) (*big.Int, error) {
	if xip4.ValidateIP(s) {
		v, err := xip4.ToLong(s)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(uint64(v)), nil
	}
	return xip6.ToLong(s)
}

// Parse 将单个文本解释为区间，按固定顺序回退：
// IPv4 CIDR → IPv6 CIDR → IPv4 子网 → 单个裸地址（退化区间）。
// 所有形式都不匹配时返回 [ErrUnrecognizedFormat]。
//
//	Parse("127/24")          // ("127.0.0.0", "127.0.0.255")
//	Parse("127/255.255.255.0")
//	Parse("2001:db8::/48")
//	Parse("127.0.0.1")       // ("127.0.0.1", "127.0.0.1")
func Parse(s string) (Range, error) {
	var start, end string
	switch {
	case xip4.ValidateCIDR(s):
		start, end, _ = xip4.CIDRToBlock(s)
	case xip6.ValidateCIDR(s):
		start, end, _ = xip6.CIDRToBlock(s)
	case xip4.ValidateSubnet(s):
		start, end, _ = xip4.SubnetToBlock(s)
	default:
		start, end = s, s
	}
	r, err := New(start, end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, s)
	}
	return r, nil
}

// MustParse 是 [Parse] 的 panic 版本，仅用于程序内固定的字面量。
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// New 由两个地址文本构造区间，端点各自按 IPv4 → IPv6 顺序解析，
// 次序颠倒时自动交换，保证起点不大于终点。
func New(start, end string) (Range, error) {
	a, err := parseAddr(start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, start)
	}
	b, err := parseAddr(end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, end)
	}
	return FromBigInts(a, b)
}

// FromBigInts 由两个整数端点构造区间，端点须落在 [0, 2^128−1]，
// 次序颠倒时自动交换。入参不被持有，构造后修改入参不影响区间。
func FromBigInts(a, b *big.Int) (Range, error) {
	for _, v := range []*big.Int{a, b} {
		if v == nil || v.Sign() < 0 || v.Cmp(xip6.MaxIP) > 0 {
			return Range{}, fmt.Errorf("%w: %v", ErrValueOutOfRange, v)
		}
	}
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return Range{start: to16(a), end: to16(b)}, nil
}

package xrange

import (
	"fmt"
	"math/big"
	"net/netip"

	"github.com/cespare/xxhash/v2"
	"go4.org/netipx"

	"github.com/omeyang/iptools/pkg/codec/xip4"
	"github.com/omeyang/iptools/pkg/codec/xip6"
)

// Version 是区间的地址族分类。
type Version int

const (
	// V4 表示终点落在 32 位值域内的区间。
	V4 Version = 4
	// V6 表示终点超出 32 位值域的区间。
	V6 Version = 6
)

// Range 是一段连续的 IP 地址区间，端点按 128 位大端序存放。
// 零值是仅含 "0.0.0.0" 一个地址的退化区间。
// Range 可比较，两个 Range 相等当且仅当端点完全一致。
type Range struct {
	start, end [16]byte
}

var big1 = big.NewInt(1)

func to16(v *big.Int) (b [16]byte) {
	v.FillBytes(b[:])
	return b
}

func from16(b [16]byte) *big.Int {
	return new(big.Int).SetBytes(b[:])
}

// fitsV4 报告 16 字节端点的值是否落在 32 位值域内。
func fitsV4(b [16]byte) bool {
	for _, x := range b[:12] {
		if x != 0 {
			return false
		}
	}
	return true
}

// render 按地址族渲染 128 位值。v 已保证落在对应值域内。
func render(v *big.Int, v4 bool) string {
	if v4 {
		s, _ := xip4.FromLong(v.Uint64())
		return s
	}
	s, _ := xip6.FromLong(v)
	return s
}

// Version 返回区间的地址族：终点超出 32 位值域为 [V6]，否则为 [V4]。
func (r Range) Version() Version {
	if fitsV4(r.end) {
		return V4
	}
	return V6
}

// Start 返回起点的整数值副本。
func (r Range) Start() *big.Int { return from16(r.start) }

// End 返回终点的整数值副本。
func (r Range) End() *big.Int { return from16(r.end) }

// StartIP 返回起点的文本形式。
func (r Range) StartIP() string {
	return render(from16(r.start), r.Version() == V4)
}

// EndIP 返回终点的文本形式。
func (r Range) EndIP() string {
	return render(from16(r.end), r.Version() == V4)
}

// String 以起止地址对的形式渲染区间。
//
//	Range{127.0.0.0/24}.String() // ("127.0.0.0", "127.0.0.255")
func (r Range) String() string {
	return fmt.Sprintf("(%q, %q)", r.StartIP(), r.EndIP())
}

// Len 返回区间内的地址数，end − start + 1。
// 全量 IPv6 空间恰好为 2^128，因此必须经 big.Int 表达。
func (r Range) Len() *big.Int {
	n := from16(r.end)
	n.Sub(n, from16(r.start))
	return n.Add(n, big1)
}

// LenUint64 是 [Range.Len] 的快路径。
// 地址数超出 uint64 值域时第二个返回值为 false。
func (r Range) LenUint64() (uint64, bool) {
	n := r.Len()
	if !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// Equal 报告两个区间的端点是否完全一致。
// 分类不参与比较：由 IPv4 与 IPv6 文本构造出的同一数值区间相等。
func (r Range) Equal(other Range) bool {
	return r == other
}

// Hash 返回端点的 64 位结构化哈希，端点一致的区间哈希必然一致。
func (r Range) Hash() uint64 {
	var buf [32]byte
	copy(buf[:16], r.start[:])
	copy(buf[16:], r.end[:])
	return xxhash.Sum64(buf[:])
}

// ToIPRange 将区间转换为 netipx 表示，便于与标准 netip 生态互操作。
// V4 区间产出 4 字节地址，V6 区间产出 16 字节地址。
func (r Range) ToIPRange() netipx.IPRange {
	if r.Version() == V4 {
		var a, b [4]byte
		copy(a[:], r.start[12:])
		copy(b[:], r.end[12:])
		return netipx.IPRangeFrom(netip.AddrFrom4(a), netip.AddrFrom4(b))
	}
	return netipx.IPRangeFrom(netip.AddrFrom16(r.start), netip.AddrFrom16(r.end))
}

// Prefixes 返回恰好覆盖区间的最小 CIDR 前缀集合。
func (r Range) Prefixes() []netip.Prefix {
	return r.ToIPRange().Prefixes()
}

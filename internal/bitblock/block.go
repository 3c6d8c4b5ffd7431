// Package bitblock 提供 CIDR 块的位运算：由基地址与前缀长度计算块的起止值。
//
// 两个地址族共享同一算法，仅位宽不同（IPv4 为 32 位，IPv6 为 128 位）：
//
//	shift = W - prefix
//	start = ip >> shift << shift   // 清除低 shift 位，前缀位是网络值的唯一来源
//	end   = start | ((1 << shift) - 1)
//
// 函数自身强制执行掩码：即使调用方传入带有非零主机位的地址，
// 结果也只保留前缀覆盖的高位。prefix == 0 返回整个地址空间，
// prefix == W 返回单个地址。
package bitblock

import "math/big"

// V4 计算 32 位地址空间内的块起止值。
// prefix 必须在 [0, 32] 内，由调用方（码器的校验层）保证。
//
// 中间运算使用 uint64，使 prefix == 0（shift == 32）无需任何特判即可
// 得到 [0, 0xFFFFFFFF]。
func V4(ip uint32, prefix int) (start, end uint32) {
	shift := uint(32 - prefix)
	mask := uint64(1)<<shift - 1
	s := uint64(ip) &^ mask
	return uint32(s), uint32(s | mask)
}

// V6 计算 128 位地址空间内的块起止值。
// prefix 必须在 [0, 128] 内。ip 不会被修改，返回值为新分配的 big.Int。
func V6(ip *big.Int, prefix int) (start, end *big.Int) {
	shift := uint(128 - prefix)
	start = new(big.Int).Rsh(ip, shift)
	start.Lsh(start, shift)
	mask := new(big.Int).Lsh(big.NewInt(1), shift)
	mask.Sub(mask, big.NewInt(1))
	end = new(big.Int).Or(start, mask)
	return start, end
}

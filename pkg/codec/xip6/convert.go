package xip6

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/omeyang/iptools/pkg/codec/xip4"
)

// ToLong 将 IPv6 地址文本转换为网络字节序的 128 位整数。
// "::" 压缩段展开为补齐 8 组所需数量的零组；
// 点分 IPv4 后缀经 xip4 转换后打包进最低两组。
//
//	ToLong("::1")                  // 1
//	ToLong("::ffff:192.0.2.128")   // 281473902969472
func ToLong(s string) (*big.Int, error) {
	if !ValidateIP(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	if strings.Contains(s, ".") {
		// 将 IPv4 后缀替换为两组十六进制
		chunks := strings.Split(s, ":")
		v4, err := xip4.ToLong(chunks[len(chunks)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		chunks = chunks[:len(chunks)-1]
		chunks = append(chunks,
			strconv.FormatUint(uint64(v4>>16&0xFFFF), 16),
			strconv.FormatUint(uint64(v4&0xFFFF), 16))
		s = strings.Join(chunks, ":")
	}

	// 展开 "::"：左右两半之间补零组，使总数达到 8
	halves := strings.SplitN(s, "::", 2)
	hextets := strings.Split(halves[0], ":")
	if len(halves) == 2 {
		right := strings.Split(halves[1], ":")
		for i := len(hextets) + len(right); i < 8; i++ {
			hextets = append(hextets, "0")
		}
		hextets = append(hextets, right...)
	}

	v := new(big.Int)
	for _, h := range hextets {
		var g uint64
		if h != "" {
			// 校验已保证每组至多 4 位十六进制
			g, _ = strconv.ParseUint(h, 16, 64)
		}
		v.Lsh(v, 16)
		v.Or(v, new(big.Int).SetUint64(g))
	}
	return v, nil
}

// FromLong 将 128 位整数转换为规范压缩形式的 IPv6 地址。
// v 为 nil 或超出 [0, 2^128-1] 时返回 [ErrValueOutOfRange]。
//
// 规范形式：8 组小写十六进制（组内去前导零），最左侧最长的
// 连续两组以上全零段压缩为 "::"；长度 1 的零段保持原样。
//
//	FromLong(big.NewInt(2130706433)) // "::7f00:1"
func FromLong(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return "", fmt.Errorf("%w: %v", ErrValueOutOfRange, v)
	}

	hex := fmt.Sprintf("%032x", v)
	hextets := make([]string, 8)
	for i := range hextets {
		h := strings.TrimLeft(hex[i*4:i*4+4], "0")
		if h == "" {
			h = "0"
		}
		hextets[i] = h
	}

	// 定位最左侧最长的全零段（并列时取最左）
	dcStart, dcLen := -1, 0
	runStart, runLen := -1, 0
	for i, h := range hextets {
		if h != "0" {
			runStart, runLen = -1, 0
			continue
		}
		if runStart == -1 {
			runStart = i
		}
		runLen++
		if runLen > dcLen {
			dcStart, dcLen = runStart, runLen
		}
	}

	if dcLen < 2 {
		return strings.Join(hextets, ":"), nil
	}
	return strings.Join(hextets[:dcStart], ":") + "::" +
		strings.Join(hextets[dcStart+dcLen:], ":"), nil
}

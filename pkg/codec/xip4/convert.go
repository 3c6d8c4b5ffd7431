package xip4

import (
	"fmt"
	"strconv"
	"strings"
)

// ToLong 将点分十进制地址转换为网络字节序的 32 位整数。
// 部分形式的展开规则：单段输入视为最高位网络段，其余补零；
// 2~3 段输入时，最后一段视为主机段放在最低位，中间补零。
//
//	ToLong("127.0.0.1") // 2130706433
//	ToLong("127.1")     // 2130706433
//	ToLong("127")       // 2130706432
func ToLong(s string) (uint32, error) {
	if !ValidateIP(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	quads := strings.Split(s, ".")

	var octets [4]uint32
	switch len(quads) {
	case 1:
		octets[0] = parseOctet(quads[0])
	case 4:
		for i, q := range quads {
			octets[i] = parseOctet(q)
		}
	default:
		// 最后一段是主机段，其余为网络段，中间补零。
		for i := 0; i < len(quads)-1; i++ {
			octets[i] = parseOctet(quads[i])
		}
		octets[3] = parseOctet(quads[len(quads)-1])
	}

	return octets[0]<<24 | octets[1]<<16 | octets[2]<<8 | octets[3], nil
}

// ToNetwork 将点分十进制地址转换为基准网络号。
// 与 [ToLong] 的区别在于部分形式全部视为网络段：
// 缺失的尾段按自然位置补零（"127.1" 展开为 127.1.0.0）。
func ToNetwork(s string) (uint32, error) {
	if !ValidateIP(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	quads := strings.Split(s, ".")
	var v uint32
	for i := 0; i < 4; i++ {
		v <<= 8
		if i < len(quads) {
			v |= parseOctet(quads[i])
		}
	}
	return v, nil
}

// FromLong 将网络字节序整数转换为规范的 4 段点分十进制地址。
// v 超出 [0, 0xFFFFFFFF] 时返回 [ErrValueOutOfRange]，从不静默截断。
func FromLong(v uint64) (string, error) {
	if v > uint64(MaxIP) {
		return "", fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}
	return formatLong(uint32(v)), nil
}

// ToHex 将点分十进制地址转换为 8 位小写十六进制串。
//
//	ToHex("127.0.0.1") // "7f000001"
func ToHex(s string) (string, error) {
	v, err := ToLong(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", v), nil
}

// FromHex 将十六进制串转换为点分十进制地址。
// 解码值超出 IPv4 范围时返回 [ErrValueOutOfRange]。
func FromHex(s string) (string, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return FromLong(v)
}

// formatLong 渲染一个已知在值域内的 32 位整数。
func formatLong(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24&255, v>>16&255, v>>8&255, v&255)
}

// parseOctet 解析一个已通过校验的八位段。
func parseOctet(q string) uint32 {
	n, _ := strconv.Atoi(q)
	return uint32(n)
}

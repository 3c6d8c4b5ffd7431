package xip4

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/omeyang/iptools/internal/bitblock"
)

// CIDRToBlock 将 CIDR 记法地址转换为块的起止地址。
// 地址部分按 [ToNetwork] 的规则展开，主机位由块计算自行清除。
//
//	CIDRToBlock("127/8")       // "127.0.0.0", "127.255.255.255"
//	CIDRToBlock("127.0.0.1/32") // "127.0.0.1", "127.0.0.1"
//	CIDRToBlock("127/0")       // "0.0.0.0", "255.255.255.255"
func CIDRToBlock(cidr string) (start, end string, err error) {
	if !ValidateCIDR(cidr) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCIDR, cidr)
	}
	ip, mask, _ := strings.Cut(cidr, "/")
	prefix, _ := strconv.Atoi(mask)
	network, _ := ToNetwork(ip)

	s, e := bitblock.V4(network, prefix)
	return formatLong(s), formatLong(e), nil
}

// NetmaskToPrefix 将点分掩码转换为 CIDR 前缀长度。
// 无效掩码返回 0，从不报错；全零掩码同样返回 0，
// 调用方无法据此区分两者，需要区分时先调用 [ValidateNetmask]。
//
//	NetmaskToPrefix("255.0.0.0")   // 8
//	NetmaskToPrefix("255.128.0.0") // 9
//	NetmaskToPrefix("127.0.0.1")   // 0
func NetmaskToPrefix(mask string) int {
	if !ValidateNetmask(mask) {
		return 0
	}
	v, _ := ToNetwork(mask)
	return bits.OnesCount32(v)
}

// SubnetToBlock 将「地址/点分掩码」转换为块的起止地址。
// 掩码先经 [NetmaskToPrefix] 转为前缀长度，再委托块计算。
//
//	SubnetToBlock("127.0.0.3/255.255.255.248") // "127.0.0.0", "127.0.0.7"
//	SubnetToBlock("127/255")                   // "127.0.0.0", "127.255.255.255"
func SubnetToBlock(subnet string) (start, end string, err error) {
	if !ValidateSubnet(subnet) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSubnet, subnet)
	}
	ip, mask, _ := strings.Cut(subnet, "/")
	prefix := NetmaskToPrefix(mask)
	network, _ := ToNetwork(ip)

	s, e := bitblock.V4(network, prefix)
	return formatLong(s), formatLong(e), nil
}

package xip4

import (
	"regexp"
	"strconv"
	"strings"
)

// 点分十进制地址：1~4 个八位段。数值上界（≤255）在正则之外单独检查。
var dottedQuadRE = regexp.MustCompile(`^(\d{1,3}\.){0,3}\d{1,3}$`)

// CIDR 记法：点分地址 + "/" + 1~2 位前缀长度。
var cidrRE = regexp.MustCompile(`^(\d{1,3}\.){0,3}\d{1,3}/\d{1,2}$`)

// ValidateIP 报告 s 是否为有效的点分十进制地址。
// 由 1~4 个以 "." 分隔、数值不超过 255 的八位段组成即视为有效，
// 部分形式（少于 4 段，如 "127.1"）也是有效地址。
func ValidateIP(s string) bool {
	if !dottedQuadRE.MatchString(s) {
		return false
	}
	for _, q := range strings.Split(s, ".") {
		// 正则已保证 1~3 位纯数字，Atoi 不会失败。
		if n, _ := strconv.Atoi(q); n > 255 {
			return false
		}
	}
	return true
}

// ValidateCIDR 报告 s 是否为有效的 CIDR 记法地址。
// 地址部分须通过 [ValidateIP]，前缀长度须在 [0, 32] 内。
func ValidateCIDR(s string) bool {
	if !cidrRE.MatchString(s) {
		return false
	}
	ip, mask, _ := strings.Cut(s, "/")
	if !ValidateIP(ip) {
		return false
	}
	n, _ := strconv.Atoi(mask)
	return n <= 32
}

// ValidateNetmask 报告 s 是否为有效的点分掩码。
// 有效掩码的二进制形式为左对齐的连续 1 后接连续 0（1 之后不得再出现 0 后的 1）。
// 全零掩码 "0.0.0.0" 视为有效（前缀长度 0）。
// 部分形式按 [ToNetwork] 的规则展开后再检查，例如 "255" 等价于 "255.0.0.0"。
func ValidateNetmask(s string) bool {
	if !ValidateIP(s) {
		return false
	}
	mask, _ := ToNetwork(s)
	// 连续性检查：按位取反后应为 2^n - 1 形式。
	// 全零掩码取反得 0xFFFFFFFF，+1 回绕为 0，同样通过。
	inverted := ^mask
	return inverted&(inverted+1) == 0
}

// ValidateSubnet 报告 s 是否为有效的「地址/点分掩码」形式。
// 两部分分别通过 [ValidateIP] 与 [ValidateNetmask] 才视为有效。
func ValidateSubnet(s string) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return false
	}
	return ValidateIP(parts[0]) && ValidateNetmask(parts[1])
}

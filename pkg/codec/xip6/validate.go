package xip6

import (
	"regexp"
	"strconv"
	"strings"
)

// 冒号十六进制形式：2~7 组后接尾组，每组 0~4 位十六进制。
// "::" 的唯一性在正则之外单独检查。纯十六进制形式接受大小写混合。
var hexRE = regexp.MustCompile(`^([0-9a-fA-F]{0,4}:){2,7}[0-9a-fA-F]{0,4}$`)

// 带点分 IPv4 后缀的形式。后缀允许部分点分（1~4 段），
// 十六进制部分仅接受小写。
var dottedSuffixRE = regexp.MustCompile(`^([0-9a-f]{0,4}:){2,6}(\d{1,3}\.){0,3}\d{1,3}$`)

// CIDR 记法：冒号十六进制地址 + "/" + 1~3 位前缀长度，仅接受小写。
var cidrRE = regexp.MustCompile(`^([0-9a-f]{0,4}:){2,7}[0-9a-f]{0,4}/\d{1,3}$`)

// ValidateIP 报告 s 是否为有效的 IPv6 地址。
// 接受冒号十六进制记法（至多一处 "::" 压缩），
// 或带点分 IPv4 后缀的形式（每个八位段 ≤255）。
func ValidateIP(s string) bool {
	if hexRE.MatchString(s) {
		return strings.Count(s, "::") <= 1
	}
	if dottedSuffixRE.MatchString(s) {
		if strings.Count(s, "::") > 1 {
			return false
		}
		hextets := strings.Split(s, ":")
		for _, q := range strings.Split(hextets[len(hextets)-1], ".") {
			if n, _ := strconv.Atoi(q); n > 255 {
				return false
			}
		}
		return true
	}
	return false
}

// ValidateCIDR 报告 s 是否为有效的 CIDR 记法地址。
// 地址部分须通过 [ValidateIP]，前缀长度须在 [0, 128] 内。
// 与地址校验不同，CIDR 形式不接受点分 IPv4 后缀。
func ValidateCIDR(s string) bool {
	if !cidrRE.MatchString(s) {
		return false
	}
	ip, mask, _ := strings.Cut(s, "/")
	if !ValidateIP(ip) {
		return false
	}
	n, _ := strconv.Atoi(mask)
	return n <= 128
}

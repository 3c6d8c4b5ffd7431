package xip6

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/iptools/internal/bitblock"
)

// CIDRToBlock 将 CIDR 记法地址转换为块的起止地址（规范压缩形式）。
// 主机位由块计算自行清除。
//
//	CIDRToBlock("2001:db8::/48") // "2001:db8::", "2001:db8:0:ffff:ffff:ffff:ffff:ffff"
//	CIDRToBlock("::/0")          // "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"
func CIDRToBlock(cidr string) (start, end string, err error) {
	if !ValidateCIDR(cidr) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCIDR, cidr)
	}
	ip, mask, _ := strings.Cut(cidr, "/")
	prefix, _ := strconv.Atoi(mask)
	v, err := ToLong(ip)
	if err != nil {
		return "", "", err
	}

	s, e := bitblock.V6(v, prefix)
	// 起止值必然在 128 位值域内，渲染不会失败
	start, _ = FromLong(s)
	end, _ = FromLong(e)
	return start, end, nil
}

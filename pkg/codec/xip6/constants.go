package xip6

import "math/big"

// IPv6 整数值域。包级 big.Int 变量为只读约定，调用方不得修改。
var (
	// MinIP 是 IPv6 的最小整数值。
	MinIP = big.NewInt(0)

	// MaxIP 是 IPv6 的最大整数值（2^128 - 1）。
	MaxIP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// 保留与特殊用途地址块。纯数据常量，仅作文档与测试基准，核心算法不依赖。
const (
	// UnspecifiedAddress 地址缺省值（仅作为源地址有效）。
	// RFC 4291: https://tools.ietf.org/html/rfc4291
	UnspecifiedAddress = "::/128"

	// Loopback 本机环回地址。
	// RFC 4291: https://tools.ietf.org/html/rfc4291
	Loopback = "::1/128"

	// Localhost 常用的 localhost 地址。
	// RFC 4291: https://tools.ietf.org/html/rfc4291
	Localhost = Loopback

	// IPv4Mapped IPv4 映射块（不可全局路由）。
	// RFC 4291: https://tools.ietf.org/html/rfc4291
	IPv4Mapped = "::ffff:0:0/96"

	// DocumentationNetwork 文档与示例网络。
	// RFC 3849: https://tools.ietf.org/html/rfc3849
	DocumentationNetwork = "2001:db8::/32"

	// TeredoNetwork Teredo 隧道地址。
	// RFC 4380: https://tools.ietf.org/html/rfc4380
	TeredoNetwork = "2001::/32"

	// IPv6ToIPv4Network 6to4 地址块。
	// RFC 3056: https://tools.ietf.org/html/rfc3056
	IPv6ToIPv4Network = "2002::/16"

	// PrivateNetwork 私有网络（ULA）。
	// RFC 4193: https://tools.ietf.org/html/rfc4193
	PrivateNetwork = "fd00::/8"

	// LinkLocal 链路本地单播网络（不可全局路由）。
	// RFC 4291: https://tools.ietf.org/html/rfc4291
	LinkLocal = "fe80::/10"

	// Multicast 多播保留块。
	// RFC 5771: https://tools.ietf.org/html/rfc5771
	Multicast = "ff00::/8"

	// MulticastLoopback 接口本地多播。
	MulticastLoopback = "ff01::/16"

	// MulticastLocal 链路本地多播。
	MulticastLocal = "ff02::/16"

	// MulticastSite 站点本地多播。
	MulticastSite = "ff05::/16"

	// MulticastOrganization 组织本地多播。
	MulticastOrganization = "ff08::/16"

	// MulticastGlobal 全局多播。
	MulticastGlobal = "ff0e::/16"

	// MulticastLocalNodes 本链路所有节点。
	MulticastLocalNodes = "ff02::1"

	// MulticastLocalRouters 本链路所有路由器。
	MulticastLocalRouters = "ff02::2"

	// MulticastLocalDHCP 本链路所有 DHCP 服务器与中继。
	MulticastLocalDHCP = "ff02::1:2"

	// MulticastSiteDHCP 本站点所有 DHCP 服务器与中继。
	MulticastSiteDHCP = "ff05::1:3"
)

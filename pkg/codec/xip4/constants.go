package xip4

// IPv4 整数值域。
const (
	// MinIP 是 IPv4 的最小整数值。
	MinIP uint32 = 0
	// MaxIP 是 IPv4 的最大整数值。
	MaxIP uint32 = 0xFFFFFFFF
)

// 保留与特殊用途地址块。纯数据常量，仅作文档与测试基准，核心算法不依赖。
const (
	// CurrentNetwork 本网络广播（仅作为源地址有效）。
	// RFC 5735: https://tools.ietf.org/html/rfc5735
	CurrentNetwork = "0.0.0.0/8"

	// PrivateNetwork10 私有网络。
	// RFC 1918: https://tools.ietf.org/html/rfc1918
	PrivateNetwork10 = "10.0.0.0/8"

	// SharedAddressSpace 运营商级 NAT 私有网络。
	// RFC 6598: https://tools.ietf.org/html/rfc6598
	SharedAddressSpace = "100.64.0.0/10"

	// Loopback 本机环回地址块。
	// RFC 5735: https://tools.ietf.org/html/rfc5735
	Loopback = "127.0.0.0/8"

	// Localhost 常用的 localhost 地址。
	// RFC 5735: https://tools.ietf.org/html/rfc5735
	Localhost = "127.0.0.1"

	// LinkLocal 无可用 IP 时的自动配置地址。
	// RFC 3927: https://tools.ietf.org/html/rfc3927
	LinkLocal = "169.254.0.0/16"

	// PrivateNetwork172x16 私有网络。
	// RFC 1918: https://tools.ietf.org/html/rfc1918
	PrivateNetwork172x16 = "172.16.0.0/12"

	// IETFProtocolReserved IETF 协议分配保留块。
	// RFC 5735: https://tools.ietf.org/html/rfc5735
	IETFProtocolReserved = "192.0.0.0/24"

	// DualStackLite Dual-Stack Lite 链路地址。
	// RFC 6333: https://tools.ietf.org/html/rfc6333
	DualStackLite = "192.0.0.0/29"

	// TestNet1 文档与示例网络。
	// RFC 5737: https://tools.ietf.org/html/rfc5737
	TestNet1 = "192.0.2.0/24"

	// IPv6ToIPv4Relay 6to4 任播中继。
	// RFC 3068: https://tools.ietf.org/html/rfc3068
	IPv6ToIPv4Relay = "192.88.99.0/24"

	// PrivateNetwork192x168 私有网络。
	// RFC 1918: https://tools.ietf.org/html/rfc1918
	PrivateNetwork192x168 = "192.168.0.0/16"

	// BenchmarkTests 网间互联基准测试网络。
	// RFC 2544: https://tools.ietf.org/html/rfc2544
	BenchmarkTests = "198.18.0.0/15"

	// TestNet2 文档与示例网络。
	// RFC 5737: https://tools.ietf.org/html/rfc5737
	TestNet2 = "198.51.100.0/24"

	// TestNet3 文档与示例网络。
	// RFC 5737: https://tools.ietf.org/html/rfc5737
	TestNet3 = "203.0.113.0/24"

	// Multicast 多播保留块。
	// RFC 5771: https://tools.ietf.org/html/rfc5771
	Multicast = "224.0.0.0/4"

	// MulticastLocal 链路本地多播。
	// RFC 5771: https://tools.ietf.org/html/rfc5771
	MulticastLocal = "224.0.0.0/24"

	// MulticastInternetwork 可转发多播。
	// RFC 5771: https://tools.ietf.org/html/rfc5771
	MulticastInternetwork = "224.0.1.0/24"

	// Reserved 原 E 类地址空间，保留未用。
	// RFC 1700: https://tools.ietf.org/html/rfc1700
	Reserved = "240.0.0.0/4"

	// Broadcast 本网络广播（仅作为目的地址有效）。
	// RFC 919: https://tools.ietf.org/html/rfc919
	Broadcast = "255.255.255.255"
)

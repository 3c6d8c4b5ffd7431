package xip4

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IPv4 地址字符串。
	ErrInvalidAddress = errors.New("xip4: invalid IPv4 address")

	// ErrInvalidCIDR 表示无效的 IPv4 CIDR 字符串。
	ErrInvalidCIDR = errors.New("xip4: invalid IPv4 CIDR")

	// ErrInvalidSubnet 表示无效的「地址/点分掩码」字符串。
	ErrInvalidSubnet = errors.New("xip4: invalid IPv4 subnet")

	// ErrInvalidHex 表示无效的十六进制地址字符串。
	ErrInvalidHex = errors.New("xip4: invalid hex string")

	// ErrValueOutOfRange 表示整数值超出 [0, 0xFFFFFFFF]。
	ErrValueOutOfRange = errors.New("xip4: value out of IPv4 range")
)

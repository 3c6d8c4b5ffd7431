package xip6

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IPv6 地址字符串。
	ErrInvalidAddress = errors.New("xip6: invalid IPv6 address")

	// ErrInvalidCIDR 表示无效的 IPv6 CIDR 字符串。
	ErrInvalidCIDR = errors.New("xip6: invalid IPv6 CIDR")

	// ErrInvalidRFC1924 表示无效的 RFC 1924 base-85 编码串。
	ErrInvalidRFC1924 = errors.New("xip6: invalid RFC 1924 string")

	// ErrValueOutOfRange 表示整数值超出 [0, 2^128-1]。
	ErrValueOutOfRange = errors.New("xip6: value out of IPv6 range")
)

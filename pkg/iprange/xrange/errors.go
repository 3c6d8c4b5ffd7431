package xrange

import "errors"

var (
	// ErrUnrecognizedFormat 表示输入无法解释为任何已知的区间形式
	// （CIDR、子网、地址对或单个地址）。
	ErrUnrecognizedFormat = errors.New("xrange: unrecognized range format")

	// ErrValueOutOfRange 表示整数端点超出 [0, 2^128-1]。
	ErrValueOutOfRange = errors.New("xrange: value out of range")

	// ErrProbeType 表示成员测试的探针既不是可解析的地址文本也不是整数。
	ErrProbeType = errors.New("xrange: expected ip address text or integer probe")

	// ErrNotInRange 表示定位的地址不在区间内。
	ErrNotInRange = errors.New("xrange: address not in range")

	// ErrIndexOutOfRange 表示下标或切片边界越界。
	ErrIndexOutOfRange = errors.New("xrange: index out of range")

	// ErrSliceStep 表示切片请求了 1 以外的步长。
	ErrSliceStep = errors.New("xrange: slice step not supported")
)

// Package xip4 提供 IPv4 地址的文本校验与转换。
//
// 与 [net/netip] 不同，xip4 接受部分点分形式（1~4 个八位段）以及
// 点分掩码记法，这两类输入在访问控制规则与旧式配置中仍然常见：
//
//   - 单 IP: "127.0.0.1"，部分形式 "127.1" / "127"
//   - CIDR: "127.0.0.1/32"，部分形式 "127/8"
//   - 子网: "127.0.0.1/255.0.0.0"（地址/点分掩码）
//
// # 部分形式的展开规则
//
// [ToLong] 将最后一个给出的八位段视为主机段：
//
//	"127"     → 127.0.0.0
//	"127.1"   → 127.0.0.1
//	"127.0.1" → 127.0.0.1
//
// [ToNetwork] 则把所有八位段按自然位置视为网络段，缺失的尾段补零：
//
//	"127.1"   → 127.1.0.0
//
// 块计算（[CIDRToBlock]、[SubnetToBlock]）基于 [ToNetwork] 的语义。
//
// # 错误处理
//
// 所有可失败函数返回 error，预定义错误变量支持 errors.Is：
//
//	_, err := xip4.ToLong("127.0.0.256")
//	if errors.Is(err, xip4.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
//
// 校验函数（Validate*）只返回 bool，不返回错误。
// [NetmaskToPrefix] 对无效掩码返回 0，从不报错。
package xip4

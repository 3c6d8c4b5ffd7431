// Package xip6 提供 IPv6 地址的文本校验与转换，地址值统一用 [*big.Int] 表示。
//
// 支持的文本形式：
//
//   - 冒号十六进制: "2001:db8::1"，至多一处 "::" 压缩
//   - 带 IPv4 后缀: "::ffff:192.0.2.128"，后缀经 xip4 转换后打包进低 32 位
//   - RFC 1924 base-85: 定长 20 字符的紧凑编码（[ToRFC1924] / [FromRFC1924]）
//   - CIDR: "2001:db8::/48"，前缀长度 0~128
//
// # 规范化输出
//
// [FromLong] 输出规范压缩形式：8 组小写十六进制（组内不补零），
// 将最左侧最长的连续两组以上全零段压缩为 "::"，长度 1 的零段不压缩。
//
// # 与 xip4 的分工
//
// 128 位算术全部通过 [math/big] 完成，32 位快速路径属于 xip4；
// 跨族规则（IPv4-mapped 降级）在 iprange/xrange 层实现，码器本身不做。
//
// 错误处理与 xip4 一致：预定义 Err* 变量支持 errors.Is，校验函数只返回 bool。
package xip6

// Package codec 提供 IP 地址文本与整数表示的编解码子包。
//
// 子包列表：
//   - xip4: IPv4 点分十进制、CIDR、掩码/子网、十六进制编解码
//   - xip6: IPv6 冒号十六进制、IPv4 映射后缀、RFC 1924 base-85 编解码
//
// 设计原则：
//   - 纯函数，无共享可变状态，并发安全
//   - 校验失败返回哨兵错误，从不 panic
package codec

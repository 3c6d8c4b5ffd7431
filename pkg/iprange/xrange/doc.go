// Package xrange 提供连续 IP 地址区间（Range）及其有序集合（List）。
//
// Range 是不可变值对象：两个 128 位端点按大端序存放，起点恒不大于
// 终点（构造时自动交换）。地址族由数值量级推断：终点超出 32 位值域
// 即为 IPv6，否则为 IPv4，文本渲染据此选择对应编解码器。
//
// 支持成员测试（含 IPv4 映射地址向 IPv4 区间的降级匹配）、定位、
// 下标与切片（步长仅支持 1）、惰性迭代（区间最大可达 2^128 个地址，
// 迭代器按需推进，绝不物化完整序列）、结构化相等与哈希。
//
// 设计决策: 端点统一用 16 字节定长数组而非 *big.Int，使 Range 可比较、
// 可作 map 键；big.Int 只在运算时临时构造。
package xrange

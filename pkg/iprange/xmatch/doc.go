// Package xmatch 提供面向高频成员测试的匹配器。
//
// Matcher 在构造时把 [xrange.List] 的成员区间编译为合并后的
// *netipx.IPSet，把逐区间线性比较换成对数级查找；语义与
// List.Contains 完全一致，包括 IPv4 映射探针向 V4 区间的降级匹配。
//
// 一致性靠构造期的镜像写入保证：V4 区间同时写入其 IPv4 映射块
// 中的像，V6 区间落在 32 位值域内的部分同时写入 IPv4 地址空间。
// 查找时探针按数值量级选择 4 字节或 16 字节表示，两侧口径一致，
// IPSet 的答案与逐区间比较的答案处处相同。
//
// 可选的 TTL LRU 缓存对文本探针的解析与查找结果做短路复用，
// 适合探针高度重复的场景（如按来源地址过滤的接入层）。
package xmatch

// Package iprange 提供 IP 地址区间抽象及其高性能匹配子包。
//
// 子包列表：
//   - xrange: 连续地址区间与有序区间集合，支持成员测试、定位、
//     切片与惰性迭代
//   - xmatch: 把区间集合编译为合并后的 IPSet 的快速匹配器，
//     可选探针结果缓存
package iprange

// Package xconf 提供规则集配置的加载、编译与热更新。
//
// 规则集是配置文件（YAML 或 JSON，按扩展名识别）中以名字组织的
// 区间表达式列表，加载时整体编译为 [xrange.List]：
//
//	rules:
//	  internal:
//	    - 127.0.0.1
//	    - 192.168/16
//	    - ["10.0.0.1", "10.0.0.19"]
//	  blocked:
//	    - 2001:db8::/48
//
// 条目接受 [xrange.Parse] 支持的任何文本形式，双元素数组按
// 起止地址对处理。任一条目编译失败则整个加载失败，错误信息
// 指明规则名与出错条目。
//
// Watch 基于 fsnotify 监控文件变更并防抖重载，重载失败时保留
// 旧规则集并通过回调上报错误。
package xconf

// Package xlog 提供基于 log/slog 的日志构建器。
//
// 库代码（编解码、区间运算）保持纯函数、不打日志；本包服务于
// CLI 与规则热更新回调等有副作用的外层。支持 text/json 两种格式、
// 字符串级别解析，以及基于 lumberjack 的日志轮转。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	defer cleanup()
package xlog

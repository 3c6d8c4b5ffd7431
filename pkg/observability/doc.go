// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持轮转
//
// 设计原则：
//   - 核心库保持纯函数、不打日志
//   - 日志只出现在 CLI 与规则热更新等有副作用的外层
package observability

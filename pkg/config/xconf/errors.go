package xconf

import "errors"

var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置读取失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrInvalidRule 表示规则集条目无法编译为区间。
	ErrInvalidRule = errors.New("xconf: invalid rule entry")

	// ErrUnknownRule 表示查询了不存在的规则名。
	ErrUnknownRule = errors.New("xconf: unknown rule")
)

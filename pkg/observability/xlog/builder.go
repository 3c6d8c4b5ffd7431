package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Builder 日志配置构建器。零值不可用，必须通过 [New] 创建。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	rotator   *lumberjack.Logger
	err       error
}

// New 创建构建器，默认输出到 stderr、text 格式、Info 级别。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetOutput 设置日志输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetLevel 设置日志级别。
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别。
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json。
// 空值视为使用默认格式，避免把“没填”当成配置错误。
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		b.format = "text"
		return b
	}
	if normalized != "text" && normalized != "json" {
		b.err = fmt.Errorf("xlog: unknown format %q", format)
		return b
	}
	b.format = normalized
	return b
}

// SetAddSource 是否在日志中记录源码位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// RotateOption 定义轮转参数调整函数类型。
type RotateOption func(*lumberjack.Logger)

// WithMaxSize 设置单个日志文件的最大体积（MB）。
func WithMaxSize(mb int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxSize = mb }
}

// WithMaxBackups 设置保留的历史文件数。
func WithMaxBackups(n int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxBackups = n }
}

// WithMaxAge 设置历史文件保留天数。
func WithMaxAge(days int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxAge = days }
}

// WithCompress 设置是否压缩历史文件。
func WithCompress(enable bool) RotateOption {
	return func(l *lumberjack.Logger) { l.Compress = enable }
}

// SetRotation 把输出切换到带轮转的日志文件。
func (b *Builder) SetRotation(filename string, opts ...RotateOption) *Builder {
	if filename == "" {
		b.err = fmt.Errorf("xlog: empty rotation filename")
		return b
	}
	rotator := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rotator)
		}
	}
	b.rotator = rotator
	b.output = rotator
	return b
}

// Build 构建 logger。cleanup 负责关闭轮转文件句柄，幂等，
// 未启用轮转时为无操作；任何配置错误都推迟到这里统一返回。
func (b *Builder) Build() (logger *slog.Logger, cleanup func() error, err error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	var handler slog.Handler
	if b.format == "json" {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}

	rotator := b.rotator
	cleanup = func() error {
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return slog.New(handler), cleanup, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/iptools/pkg/codec/xip4"
	"github.com/omeyang/iptools/pkg/codec/xip6"
	"github.com/omeyang/iptools/pkg/config/xconf"
	"github.com/omeyang/iptools/pkg/iprange/xrange"
	"github.com/omeyang/iptools/pkg/observability/xlog"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示调用方参数错误，统一映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func createCommands() []*cli.Command {
	return []*cli.Command{
		createBlockCommand(),
		createConvertCommand(),
		createContainsCommand(),
		createCheckCommand(),
	}
}

// newLogger 按全局选项构建 CLI 日志器。
func newLogger(cmd *cli.Command) (*slog.Logger, func() error, error) {
	return xlog.New().
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format")).
		Build()
}

func createBlockCommand() *cli.Command {
	return &cli.Command{
		Name:      "block",
		Aliases:   []string{"b"},
		Usage:     "计算 CIDR/子网表达式的块起止地址",
		ArgsUsage: "<表达式>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "block 需要恰好一个表达式参数"}
			}
			return cmdBlock(os.Stdout, cmd.Args().First())
		},
	}
}

// cmdBlock 输出表达式对应块的起止地址，每行一个。
func cmdBlock(w io.Writer, expr string) error {
	r, err := xrange.Parse(expr)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无法解析表达式 %q", expr)}
	}
	fmt.Fprintf(w, "%s\n%s\n", r.StartIP(), r.EndIP())
	return nil
}

func createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "地址与整数表示互转",
		ArgsUsage: "<地址|整数>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "IPv4 地址输出 8 位十六进制",
			},
			&cli.BoolFlag{
				Name:  "rfc1924",
				Usage: "IPv6 地址输出 RFC 1924 base-85",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "convert 需要恰好一个参数"}
			}
			return cmdConvert(os.Stdout, cmd.Args().First(),
				cmd.Bool("hex"), cmd.Bool("rfc1924"))
		},
	}
}

// cmdConvert 在文本与整数表示间转换：
//   - IPv4 文本 → 32 位整数（--hex 输出十六进制）
//   - IPv6 文本 → 128 位整数（--rfc1924 输出 base-85）
//   - 十进制整数 → 按量级渲染为 IPv4 或 IPv6 文本
func cmdConvert(w io.Writer, arg string, asHex, asRFC1924 bool) error {
	switch {
	case xip4.ValidateIP(arg):
		if asHex {
			hex, err := xip4.ToHex(arg)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			fmt.Fprintln(w, hex)
			return nil
		}
		v, _ := xip4.ToLong(arg)
		fmt.Fprintln(w, v)
		return nil

	case xip6.ValidateIP(arg):
		v, err := xip6.ToLong(arg)
		if err != nil {
			return &usageError{msg: err.Error()}
		}
		if asRFC1924 {
			enc, _ := xip6.ToRFC1924(v)
			fmt.Fprintln(w, enc)
			return nil
		}
		fmt.Fprintln(w, v)
		return nil

	default:
		v, ok := new(big.Int).SetString(strings.TrimSpace(arg), 10)
		if !ok {
			return &usageError{msg: fmt.Sprintf("无法解析 %q：既不是地址也不是十进制整数", arg)}
		}
		var (
			s   string
			err error
		)
		if v.IsUint64() && v.Uint64() <= 0xFFFFFFFF {
			s, err = xip4.FromLong(v.Uint64())
		} else {
			s, err = xip6.FromLong(v)
		}
		if err != nil {
			return &usageError{msg: err.Error()}
		}
		fmt.Fprintln(w, s)
		return nil
	}
}

func createContainsCommand() *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "判断探针是否落在区间内",
		ArgsUsage: "<区间> <探针>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{msg: "contains 需要区间和探针两个参数"}
			}
			return cmdContains(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

// cmdContains 输出 true/false；探针不在区间内时以退出码 1 结束。
func cmdContains(w io.Writer, rangeExpr, probe string) error {
	r, err := xrange.Parse(rangeExpr)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无法解析区间 %q", rangeExpr)}
	}
	ok, err := r.Contains(probe)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无法解析探针 %q", probe)}
	}
	fmt.Fprintln(w, ok)
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "按规则集配置判断探针归属",
		ArgsUsage: "<规则文件> <探针>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rule",
				Aliases: []string{"r"},
				Usage:   "规则名（省略时测试所有规则）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{msg: "check 需要规则文件和探针两个参数"}
			}
			logger, cleanup, err := newLogger(cmd)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			defer cleanup()
			return cmdCheck(os.Stdout, logger,
				cmd.Args().Get(0), cmd.String("rule"), cmd.Args().Get(1))
		},
	}
}

// cmdCheck 加载规则集并测试探针。指定 --rule 时输出 true/false，
// 否则输出每个命中的规则名；无任何命中时以退出码 1 结束。
func cmdCheck(w io.Writer, logger *slog.Logger, path, rule, probe string) error {
	l, err := xconf.Load(path)
	if err != nil {
		return fmt.Errorf("加载规则集失败: %w", err)
	}
	logger.Debug("规则集已加载", "path", path, "rules", len(l.Rules()))

	if rule != "" {
		ok, err := l.Contains(rule, probe)
		switch {
		case errors.Is(err, xconf.ErrUnknownRule):
			return &usageError{msg: fmt.Sprintf("未知规则 %q", rule)}
		case err != nil:
			return &usageError{msg: fmt.Sprintf("无法解析探针 %q", probe)}
		}
		fmt.Fprintln(w, ok)
		if !ok {
			return &exitError{code: 1}
		}
		return nil
	}

	matched := false
	for _, name := range l.Rules() {
		ok, err := l.Contains(name, probe)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无法解析探针 %q", probe)}
		}
		if ok {
			fmt.Fprintln(w, name)
			matched = true
		}
	}
	if !matched {
		return &exitError{code: 1}
	}
	return nil
}

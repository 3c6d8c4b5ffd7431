// iptoolctl 是 IP 地址与区间运算的命令行工具。
//
// 用法:
//
//	iptoolctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--log-level    日志级别 (debug/info/warn/error, 默认: warn)
//	--log-format   日志格式 (text/json, 默认: text)
//
// 命令:
//
//	block <表达式>                计算 CIDR/子网表达式的块起止地址
//	convert <地址|整数>           地址与整数表示互转
//	contains <区间> <探针>        判断探针是否落在区间内
//	check <规则文件> <探针>       按规则集配置判断探针归属
//	help                          显示帮助信息
//
// 退出码:
//
//	0: 执行成功（contains/check: 探针在区间内）
//	1: 执行失败（contains/check: 探针不在区间内）
//	2: 参数错误（无法解析的表达式、未知规则名、未知命令等）
//
// 示例:
//
//	iptoolctl block 192.168/16
//	iptoolctl block 2001:db8::/48
//	iptoolctl convert 127.0.0.1
//	iptoolctl convert --rfc1924 ::1
//	iptoolctl contains 10/8 10.1.2.3
//	iptoolctl check --rule internal rules.yaml 192.168.0.1
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "iptoolctl",
		Usage:   "IP 地址与区间运算命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130) // 第二次信号: 强制退出
	}()
}

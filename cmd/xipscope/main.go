// xipscope 判断 IP 地址是否在公网全局可达，并输出地址空间分类。
//
// 用法:
//
//	xipscope [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json/.toml）
//	    --log-level   日志级别 (debug/info/warn/error，默认 info)
//	    --log-format  日志格式 (text/json，默认 text)
//	    --log-file    日志文件（按大小轮转），默认输出到 stderr
//	-o, --output      结果格式 (text/json，默认 text)
//
// 命令:
//
//	classify <addr>...   输出每个地址的完整分类
//	check <addr>...      全部地址全局可达时退出码为 0，否则为 1
//	scan [file|-]...     逐行分类文件或标准输入中的地址
//	blocks               输出特殊用途地址块表
//
// 退出码:
//
//	0: 成功（check: 全部全局可达）
//	1: 执行失败（check: 存在非全局地址）
//	2: 参数错误（无效地址、未知命令、配置错误等）
//	130: 被 SIGINT/SIGTERM 中断
//
// 示例:
//
//	xipscope classify 192.0.0.9 ff02::1
//	xipscope check -q 8.8.8.8 && echo public
//	xipscope -o json scan --non-global peers.txt
//	cat addrs.txt | xipscope scan
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/omeyang/xipscope/pkg/lifecycle/xrun"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := xrun.SignalContext(context.Background())
	code := runContext(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runContext 执行 CLI 并把错误映射为文档约定的退出码。
func runContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)
	err := createApp(a).Run(ctx, args)
	a.close()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	// CLI 框架产生的参数错误（如未知 flag、未知命令）同样返回 2。
	if isCLIUsageError(err) {
		return 2
	}
	if errors.Is(err, xrun.ErrSignal) {
		fmt.Fprintf(stderr, "已中断: %v\n", err)
		return xrun.ExitCodeInterrupted
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

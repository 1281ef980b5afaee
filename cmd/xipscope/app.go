package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipscope/pkg/observability/xlog"
)

// app 保存一次命令执行的 I/O 与运行时依赖。
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg     settings
	logger  xlog.Logger
	cleanup func() error
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    defaultSettings(),
		logger: xlog.Discard(),
	}
}

// close 释放日志文件等资源，可重复调用。
func (a *app) close() {
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			fmt.Fprintf(a.stderr, "关闭日志失败: %v\n", err)
		}
	}
}

// before 在子命令执行前加载配置并初始化日志。
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return ctx, err
	}
	logger, cleanup, err := cfg.buildLogger(a.stderr)
	if err != nil {
		return ctx, err
	}
	a.cfg = cfg
	a.logger = logger.With(slog.String(xlog.KeyComponent, "xipscope"))
	a.cleanup = cleanup
	a.logger.Debug(ctx, "settings loaded",
		slog.String("config", cmd.String("config")),
		slog.String("settings", cfg.String()))
	return ctx, nil
}

// createApp 创建 CLI 应用。
func createApp(a *app) *cli.Command {
	return &cli.Command{
		Name:      "xipscope",
		Usage:     "判断 IP 地址是否全局可达并输出地址空间分类",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json/.toml）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（按大小轮转），为空时输出到 stderr",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "结果格式 (text/json)",
				Value:   outputText,
			},
		},
		Before:   a.before,
		Commands: createCommands(a),
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 runContext() 统一处理退出码映射。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.stderr, err)
			}
		},
		Description: `xipscope 判断地址在公网上是否全局可达（IPv4 排除私有、共享、
文档、基准测试、保留等块，192.0.0.9 与 192.0.0.10 例外；IPv6 多播仅全局作用域
可达，单播排除环回、链路本地、ULA 与文档前缀）。

命令:
  classify <addr>...   输出完整分类
  check <addr>...      全部全局可达时退出码为 0，否则为 1
  scan [file|-]...     逐行扫描文件或标准输入
  blocks               输出特殊用途地址块表`,
	}
}

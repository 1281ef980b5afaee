package main

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipscope/pkg/util/xnet"
)

// 创建所有子命令。
func createCommands(a *app) []*cli.Command {
	return []*cli.Command{
		createClassifyCommand(a),
		createCheckCommand(a),
		createScanCommand(a),
		createBlocksCommand(a),
	}
}

// createClassifyCommand 创建 classify 子命令（输出完整分类）。
func createClassifyCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Aliases:   []string{"c"},
		Usage:     "输出每个地址的完整分类",
		ArgsUsage: "<addr>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			addrs, err := parseArgs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			p := newPrinter(a.stdout, a.cfg.Output)
			for i, addr := range addrs {
				r := newReport(cmd.Args().Get(i), addr)
				c := xnet.Classify(addr)
				r.Classification = &c
				a.logger.Debug(ctx, "classified",
					slog.String("addr", r.Addr), slog.Bool("global", r.Global), slog.String("label", r.Label))
				if err := p.classify(r); err != nil {
					return err
				}
			}
			return p.flush()
		},
	}
}

// createCheckCommand 创建 check 子命令。
// 全部地址全局可达时返回 nil，否则返回 exitError{1}。
func createCheckCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "检查地址是否全部全局可达（是: 退出码 0，否: 退出码 1）",
		ArgsUsage: "<addr>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "不输出结果，仅设置退出码",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			addrs, err := parseArgs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			quiet := cmd.Bool("quiet")
			p := newPrinter(a.stdout, a.cfg.Output)
			nonGlobal := 0
			for i, addr := range addrs {
				r := newReport(cmd.Args().Get(i), addr)
				if !r.Global {
					nonGlobal++
				}
				if quiet {
					continue
				}
				if err := p.check(r); err != nil {
					return err
				}
			}
			if err := p.flush(); err != nil {
				return err
			}
			a.logger.Debug(ctx, "check finished",
				slog.Int("total", len(addrs)), slog.Int("non_global", nonGlobal))
			if nonGlobal > 0 {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

// createScanCommand 创建 scan 子命令（逐行扫描文件或标准输入）。
func createScanCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "逐行分类文件或标准输入中的地址（# 注释与空行跳过）",
		ArgsUsage: "[file|-]...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "non-global",
				Aliases: []string{"n"},
				Usage:   "仅输出非全局可达的地址",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "并发读取的文件数",
				Value:   defaultScanJobs,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := scanOptions{
				jobs:          a.cfg.Scan.Jobs,
				nonGlobalOnly: a.cfg.Scan.NonGlobalOnly,
			}
			if cmd.IsSet("jobs") {
				opts.jobs = cmd.Int("jobs")
			}
			if cmd.IsSet("non-global") {
				opts.nonGlobalOnly = cmd.Bool("non-global")
			}
			if opts.jobs < 1 || opts.jobs > maxScanJobs {
				return newUsageError(nil, "--jobs 必须在 1-%d 之间，当前 %d", maxScanJobs, opts.jobs)
			}
			return a.scan(ctx, cmd.Args().Slice(), opts)
		},
	}
}

// createBlocksCommand 创建 blocks 子命令（输出特殊用途地址块表）。
func createBlocksCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "blocks",
		Usage: "输出特殊用途地址块表",
		Action: func(_ context.Context, _ *cli.Command) error {
			p := newPrinter(a.stdout, a.cfg.Output)
			for _, b := range xnet.SpecialBlocks() {
				if err := p.block(b); err != nil {
					return err
				}
			}
			return p.flush()
		},
	}
}

// parseArgs 解析命令行地址参数，任一无效即返回 usageError。
func parseArgs(args []string) ([]netip.Addr, error) {
	if len(args) == 0 {
		return nil, newUsageError(nil, "至少需要一个地址参数")
	}
	addrs := make([]netip.Addr, 0, len(args))
	for _, s := range args {
		addr, err := xnet.ParseAddr(s)
		if err != nil {
			if errors.Is(err, xnet.ErrInvalidAddress) {
				return nil, newUsageError(nil, "无效地址 %q", s)
			}
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/omeyang/xipscope/pkg/lifecycle/xrun"
	"github.com/omeyang/xipscope/pkg/observability/xlog"
	"github.com/omeyang/xipscope/pkg/util/xnet"
)

// stdinName 是命令行中代表标准输入的参数，同时用作输出中的来源名。
const stdinName = "-"

// maxLineBytes 单行最大长度。
const maxLineBytes = 64 * 1024

type scanOptions struct {
	jobs          int
	nonGlobalOnly bool
}

// scanResult 是单个输入源的扫描结果。
type scanResult struct {
	reports []report
	stats   summary
}

// scan 并发扫描所有输入源（至多 opts.jobs 个同时进行），
// 按参数顺序输出结果，最后输出汇总。
func (a *app) scan(ctx context.Context, sources []string, opts scanOptions) error {
	if len(sources) == 0 {
		sources = []string{stdinName}
	}
	stdinCount := 0
	for _, s := range sources {
		if s == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return newUsageError(nil, "标准输入 %q 只能出现一次", stdinName)
	}

	results := make([]scanResult, len(sources))
	g, _ := xrun.NewGroup(ctx,
		xrun.WithName("scan"),
		xrun.WithLimit(opts.jobs),
		xrun.WithLogger(a.logger))
	for i, src := range sources {
		g.GoWithName(src, func(ctx context.Context) error {
			res, err := a.scanSource(ctx, src, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := newPrinter(a.stdout, a.cfg.Output)
	var total summary
	for _, res := range results {
		for _, r := range res.reports {
			if err := p.scan(r); err != nil {
				return err
			}
		}
		total.add(res.stats)
	}
	if err := p.summary(a.stdout, total); err != nil {
		return err
	}

	a.logger.Info(ctx, "scan finished",
		slog.Int("sources", len(sources)),
		slog.Int("total", total.Total),
		slog.Int("global", total.Global),
		slog.Int("non_global", total.NonGlobal),
		slog.Int("invalid", total.Invalid))
	return nil
}

// scanSource 打开并扫描单个输入源。
func (a *app) scanSource(ctx context.Context, src string, opts scanOptions) (scanResult, error) {
	if src == stdinName {
		return a.scanReader(ctx, src, a.stdin, opts)
	}
	f, err := os.Open(src)
	if err != nil {
		return scanResult{}, fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()
	return a.scanReader(ctx, src, f, opts)
}

// scanReader 逐行读取地址。每行取第一个字段，"#" 之后为注释。
// 无效行记录警告并计入 invalid，不中断扫描。
func (a *app) scanReader(ctx context.Context, src string, r io.Reader, opts scanOptions) (scanResult, error) {
	var res scanResult
	logger := a.logger.With(slog.String("source", src))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return res, err
		}

		field, ok := addressField(sc.Text())
		if !ok {
			continue
		}
		res.stats.Total++

		addr, err := xnet.ParseAddr(field)
		if err != nil {
			res.stats.Invalid++
			logger.Warn(ctx, "skip invalid address", slog.Int("line", line), xlog.Err(err))
			continue
		}

		rep := newReport(field, addr)
		rep.Source, rep.Line = src, line
		if rep.Global {
			res.stats.Global++
		} else {
			res.stats.NonGlobal++
		}
		logger.Debug(ctx, "classified",
			slog.Int("line", line), slog.String("addr", rep.Addr), slog.Bool("global", rep.Global))

		if opts.nonGlobalOnly && rep.Global {
			continue
		}
		res.reports = append(res.reports, rep)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read %s: %w", src, err)
	}
	return res, nil
}

// addressField 去除注释后返回行内第一个字段；空行或纯注释行返回 false。
func addressField(line string) (string, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

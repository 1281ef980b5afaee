package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipscope/pkg/config/xconf"
	"github.com/omeyang/xipscope/pkg/observability/xlog"
)

// 输出格式
const (
	outputText = "text"
	outputJSON = "json"
)

// 默认值
const (
	defaultScanJobs = 4
	maxScanJobs     = 64
)

// logSettings 日志配置。
type logSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// scanSettings scan 命令配置。
type scanSettings struct {
	Jobs          int  `koanf:"jobs"`
	NonGlobalOnly bool `koanf:"non_global_only"`
}

// settings 是配置文件与命令行参数合并后的运行配置。
// 优先级：命令行参数 > 配置文件 > 默认值。
type settings struct {
	Log    logSettings  `koanf:"log"`
	Output string       `koanf:"output"`
	Scan   scanSettings `koanf:"scan"`
}

func defaultSettings() settings {
	return settings{
		Log: logSettings{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  xlog.DefaultRotateMaxSizeMB,
			MaxBackups: xlog.DefaultRotateMaxBackups,
		},
		Output: outputText,
		Scan:   scanSettings{Jobs: defaultScanJobs},
	}
}

// loadSettings 读取配置文件（如有），再用显式设置的全局参数覆盖。
func loadSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return s, newUsageError(err, "加载配置 %s 失败", path)
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return s, newUsageError(err, "解析配置 %s 失败", path)
		}
	}

	if cmd.IsSet("log-level") {
		s.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("output") {
		s.Output = cmd.String("output")
	}

	return s, s.validate()
}

func (s *settings) validate() error {
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))
	switch s.Output {
	case outputText, outputJSON:
	default:
		return newUsageError(nil, "不支持的输出格式 %q（可选: text, json）", s.Output)
	}
	if s.Scan.Jobs < 1 || s.Scan.Jobs > maxScanJobs {
		return newUsageError(nil, "scan.jobs 必须在 1-%d 之间，当前 %d", maxScanJobs, s.Scan.Jobs)
	}
	return nil
}

// buildLogger 按配置构建日志实例；日志与结果输出分离，默认写 stderr。
func (s settings) buildLogger(stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format)
	if s.Log.File != "" {
		b = b.SetRotation(s.Log.File,
			xlog.RotateMaxSizeMB(s.Log.MaxSizeMB),
			xlog.RotateMaxBackups(s.Log.MaxBackups))
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, newUsageError(err, "日志配置无效")
	}
	return logger, cleanup, nil
}

func (s settings) String() string {
	return fmt.Sprintf("output=%s log.level=%s log.format=%s scan.jobs=%d",
		s.Output, s.Log.Level, s.Log.Format, s.Scan.Jobs)
}

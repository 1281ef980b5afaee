package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志轮转默认值
const (
	DefaultRotateMaxSizeMB  = 100
	DefaultRotateMaxBackups = 3
)

// RotateOption 日志轮转配置选项
type RotateOption func(*lumberjack.Logger)

// RotateMaxSizeMB 设置单个日志文件最大大小（MB），必须 > 0。
func RotateMaxSizeMB(n int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxSize = n }
}

// RotateMaxBackups 设置保留的备份文件数量，0 表示不限制。
func RotateMaxBackups(n int) RotateOption {
	return func(l *lumberjack.Logger) { l.MaxBackups = n }
}

// RotateCompress 设置是否 gzip 压缩备份文件。
func RotateCompress(enable bool) RotateOption {
	return func(l *lumberjack.Logger) { l.Compress = enable }
}

// Builder 日志配置构建器
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	attrs     []slog.Attr
	closer    io.Closer
	err       error
}

// New 创建配置构建器，默认输出到 stderr、Info 级别、text 格式。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json。空值视为 text。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "":
		b.format = "text"
	case "text", "json":
		b.format = normalized
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetAttrs 设置附加到每条日志的固定属性（如 component、version）。
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetRotation 将日志写入 filename，并按大小轮转（基于 lumberjack）。
// 父目录不存在时自动创建；路径中的 ".." 穿越段会被拒绝。
func (b *Builder) SetRotation(filename string, opts ...RotateOption) *Builder {
	if b.err != nil {
		return b
	}
	cleaned, err := cleanLogPath(filename)
	if err != nil {
		b.err = err
		return b
	}
	l := &lumberjack.Logger{
		Filename:   cleaned,
		MaxSize:    DefaultRotateMaxSizeMB,
		MaxBackups: DefaultRotateMaxBackups,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.MaxSize <= 0 || l.MaxBackups < 0 {
		b.err = fmt.Errorf("%w: max_size=%d max_backups=%d", ErrInvalidRotation, l.MaxSize, l.MaxBackups)
		return b
	}
	if err := ensureLogDir(cleaned); err != nil {
		b.err = err
		return b
	}
	b.output = l
	b.closer = l
	return b
}

// Build 构建 Logger 实例
//
// 返回值：
//   - LoggerWithLevel: 日志实例，同时支持动态级别控制
//   - func() error: 清理函数，用于关闭轮转文件，可重复调用
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	switch b.format {
	case "json":
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:   handler,
		levelVar:  b.levelVar,
		addSource: b.addSource,
	}

	var once sync.Once
	closer := b.closer
	cleanup := func() error {
		var err error
		once.Do(func() {
			if closer != nil {
				err = closer.Close()
			}
		})
		return err
	}

	return logger, cleanup, nil
}

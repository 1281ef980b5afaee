package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
//
// 所有方法都需要 context.Context 参数；方法签名只接受 slog.Attr，
// 避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger
	With(attrs ...slog.Attr) Logger

	// WithGroup 返回带分组的派生 Logger
	WithGroup(name string) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	// SetLevel 动态设置日志级别
	SetLevel(level Level)

	// GetLevel 获取当前日志级别
	GetLevel() Level

	// Enabled 检查指定级别是否启用
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler，由 Build() 返回。
type LoggerWithLevel interface {
	Logger
	Leveler
}

// Discard 返回丢弃所有输出的 Logger，用于测试或未配置日志的调用方。
func Discard() Logger {
	return &xlogger{
		handler:  slog.DiscardHandler,
		levelVar: new(slog.LevelVar),
	}
}

// Err 返回 key 为 "error" 的属性；err 为 nil 时返回空属性（会被 handler 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// 常用属性键
const (
	KeyError     = "error"
	KeyComponent = "component"
)

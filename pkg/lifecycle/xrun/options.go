package xrun

import "github.com/omeyang/xipscope/pkg/observability/xlog"

// Option 配置 Group 的选项函数。
type Option func(*groupOptions)

type groupOptions struct {
	logger xlog.Logger
	name   string
	limit  int
}

func defaultOptions() *groupOptions {
	return &groupOptions{
		logger: xlog.Discard(),
		name:   "xrun",
		limit:  -1,
	}
}

// WithLogger 设置日志记录器，用于记录任务启动与结束。
// 默认丢弃日志；nil 被忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(o *groupOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 Group 名称，用于日志中标识不同的 Group。
// 默认值为 "xrun"。
func WithName(name string) Option {
	return func(o *groupOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLimit 限制同时运行的任务数，n <= 0 表示不限制。
// 达到上限时 Go/GoWithName 阻塞直到有任务结束。
func WithLimit(n int) Option {
	return func(o *groupOptions) {
		if n > 0 {
			o.limit = n
		} else {
			o.limit = -1
		}
	}
}

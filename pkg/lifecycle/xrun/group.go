package xrun

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xipscope/pkg/observability/xlog"
)

// Group 基于 errgroup + context 管理一组并发任务。
//
// 当任一任务返回错误、调用 Cancel 或父 context 被取消时，
// 所有任务都会收到取消信号。
//
// Go、GoWithName、Cancel 可安全地从多个 goroutine 并发调用。
// Wait 应仅调用一次。
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建新的 Group。
//
// 返回 Group 和派生的 context。当任一任务返回错误时，
// 返回的 context 会被取消。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	// 设计决策: nil context 归一化为 context.Background()，
	// 防止 context.WithCancelCause(nil) panic。
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	eg.SetLimit(options.limit)

	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 启动一个 goroutine 执行 fn。fn 应监听 ctx.Done() 以响应取消。
// 当 fn 返回非 nil 错误时，会触发所有其他任务的取消。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return fn(g.ctx)
	})
}

// GoWithName 与 Go 相同，但会在日志中记录任务名称。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("task", name)}
		g.opts.logger.Debug(g.ctx, "task starting", attrs...)
		err := fn(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.opts.logger.Warn(g.ctx, "task failed", append(attrs, xlog.Err(err))...)
		} else {
			g.opts.logger.Debug(g.ctx, "task finished", attrs...)
		}
		return err
	})
}

// Wait 等待所有任务完成，返回第一个非 nil 错误。
//
// 若 Group 被 Cancel(cause) 取消或父 context 带有取消原因，
// 优先返回该原因（如 [*SignalError]），这样退出原因不会被
// 任务返回的 context.Canceled 掩盖。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()

	if g.causeCtx.Err() != nil {
		if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
	}
	return err
}

// Cancel 主动取消所有任务，cause 作为 Wait 的返回值。
//
// 注意：cause 不应包装 context.Canceled，否则 Wait 会回退到任务自身的错误。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

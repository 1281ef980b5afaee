// Package xrun 提供批处理任务的并发运行与信号感知的生命周期管理。
//
// # 任务组
//
// [Group] 基于 errgroup 管理一组并发任务：
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("scan"), xrun.WithLimit(4))
//	for _, src := range sources {
//	    g.GoWithName(src, func(ctx context.Context) error {
//	        return process(ctx, src)
//	    })
//	}
//	if err := g.Wait(); err != nil {
//	    return err
//	}
//
// 任一任务返回错误时，其余任务的 ctx 被取消。与长期运行的服务不同，
// 批处理任务被取消即视为失败：Wait 优先返回取消原因（如 [*SignalError]），
// 没有显式原因时返回任务自身的错误（通常是 context.Canceled）。
//
// # 信号处理
//
// [SignalContext] 返回在收到 [DefaultSignals] 中任一信号时被取消的 context，
// 取消原因为 [*SignalError]；第二次收到信号时以退出码 130 直接终止进程。
//
//	ctx, stop := xrun.SignalContext(context.Background())
//	defer stop()
//
// 使用 errors.Is(err, xrun.ErrSignal) 判断是否因信号终止。
package xrun

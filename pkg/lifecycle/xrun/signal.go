package xrun

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitCodeInterrupted 是第二次收到信号时强制退出的退出码（128 + SIGINT）。
const ExitCodeInterrupted = 130

// 可替换以便测试，生产环境为 signal.Notify/signal.Stop/os.Exit。
var (
	notifySignals = signal.Notify
	stopSignals   = signal.Stop
	exitProcess   = os.Exit
)

// DefaultSignals 返回默认监听的系统信号列表（SIGINT、SIGTERM）。
// 每次调用返回新的切片，调用者可安全修改。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

// SignalContext 返回在收到信号时被取消的 context，取消原因为 [*SignalError]。
// signals 为空时使用 [DefaultSignals]。
//
// 第一次收到信号时取消 context，让任务有机会清理；
// 第二次收到信号时以 [ExitCodeInterrupted] 直接退出进程。
//
// 返回的 stop 函数停止监听并释放资源，可重复调用。
func SignalContext(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = DefaultSignals()
	}
	ctx, cancel := context.WithCancelCause(parent)
	stopFn, exitFn := stopSignals, exitProcess

	sigCh := make(chan os.Signal, 2)
	notifySignals(sigCh, signals...)
	done := make(chan struct{})

	go func() {
		defer stopFn(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&SignalError{Signal: sig})
		case <-done:
			return
		}
		select {
		case <-sigCh:
			exitFn(ExitCodeInterrupted)
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			close(done)
			cancel(nil)
		})
	}
}

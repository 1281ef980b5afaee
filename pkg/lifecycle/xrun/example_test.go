package xrun_test

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/omeyang/xipscope/pkg/lifecycle/xrun"
)

func ExampleGroup() {
	g, _ := xrun.NewGroup(context.Background(), xrun.WithName("squares"), xrun.WithLimit(2))

	results := make([]int, 4)
	for i := range results {
		g.Go(func(ctx context.Context) error {
			results[i] = i * i
			return nil
		})
	}

	err := g.Wait()
	fmt.Println(results, err)
	// Output: [0 1 4 9] <nil>
}

func ExampleSignalError() {
	var err error = &xrun.SignalError{Signal: syscall.SIGTERM}
	fmt.Println(errors.Is(err, xrun.ErrSignal))
	fmt.Println(err)
	// Output:
	// true
	// received signal terminated
}

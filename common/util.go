package common

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunParallel runs every function in its own goroutine and waits for all of
// them. It returns the first error; the context passed to the functions is
// cancelled as soon as one of them fails.
//
// Functions must not share mutable state. Each one should write its result
// into its own slot, which the caller reads after RunParallel returns.
func RunParallel(ctx context.Context, funcs ...func(ctx context.Context) error) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, fn := range funcs {
		g.Go(func() error {
			return fn(gCtx)
		})
	}
	return g.Wait()
}

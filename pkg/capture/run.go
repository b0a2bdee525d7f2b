package capture

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAll calls fn for every combination in [from, to) with at most limit calls
// in flight. The first error cancels the context passed to the remaining
// calls and is returned. A limit below 1 runs one call at a time.
func RunAll(ctx context.Context, from, to, limit int, fn func(ctx context.Context, combination int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for c := from; c < to; c++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, c)
		})
	}
	return g.Wait()
}

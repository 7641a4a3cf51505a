package memo

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Warm resolves keys in parallel, at most limit at a time (no limit when
// limit <= 0). It returns the first error of the wrapped function and stops
// starting new keys after it; keys resolved so far stay recorded.
//
// Cancelling ctx stops scheduling but does not interrupt running
// computations. The cancellation cause is returned only when it kept some
// key from being resolved.
func (c *Cache[K, V]) Warm(ctx context.Context, limit int, keys ...K) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	var stopped atomic.Bool
	for _, key := range keys {
		if gctx.Err() != nil {
			stopped.Store(true)
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				stopped.Store(true)
				return nil
			}
			_, err := c.Get(key)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if stopped.Load() {
		return context.Cause(ctx)
	}
	return nil
}

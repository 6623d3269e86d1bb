// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelRows calls fn(y) for every y in [0, ny) using at most workers
// goroutines. Rows are handed out in contiguous bands so that each output
// row is written by exactly one goroutine. workers ≤ 0 means GOMAXPROCS.
//
// The first error returned by fn cancels the remaining bands; ctx
// cancellation is checked before each row.
func ParallelRows(ctx context.Context, ny, workers int, fn func(y int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > ny {
		workers = ny
	}
	if workers <= 1 {
		for y := 0; y < ny; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	band := (ny + workers - 1) / workers
	for lo := 0; lo < ny; lo += band {
		lo := lo
		hi := min(lo+band, ny)
		g.Go(func() error {
			for y := lo; y < hi; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(y); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// ParallelEach calls fn(k) for every k in [0, n) with at most workers
// goroutines. Used for independent whole-field passes (one smoothing per
// field or per tensor component).
func ParallelEach(ctx context.Context, n, workers int, fn func(k int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(k)
		})
	}

	return g.Wait()
}

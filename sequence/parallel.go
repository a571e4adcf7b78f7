// SPDX-License-Identifier: MIT
// Package: halton/sequence
//
// parallel.go — splitting an index range across workers.

package sequence

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range is a contiguous block of indices [Start, Start+Count).
type Range struct {
	Start int
	Count int
}

// Partition splits [start, start+count) into at most parts disjoint, ordered
// ranges whose sizes differ by at most one. Empty ranges are omitted, so
// count == 0 yields nil.
//
// Errors:
//   - ErrInvalidIndex if start < 0.
//   - ErrInvalidCount if count < 0, parts < 1, or the range overflows.
func Partition(start, count, parts int) ([]Range, error) {
	if start < 0 {
		return nil, fmt.Errorf("Partition(%d,%d,%d): %w", start, count, parts, ErrInvalidIndex)
	}
	if count < 0 || parts < 1 || count > math.MaxInt-start {
		return nil, fmt.Errorf("Partition(%d,%d,%d): %w", start, count, parts, ErrInvalidCount)
	}
	if parts > count {
		parts = count
	}

	out := make([]Range, 0, parts)
	size, extra := 0, 0
	if parts > 0 {
		size, extra = count/parts, count%parts
	}
	next := start
	for p := 0; p < parts; p++ {
		n := size
		if p < extra {
			n++
		}
		out = append(out, Range{Start: next, Count: n})
		next += n
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Parallel computes the points of [start, start+count) on up to workers
// goroutines, each Seeking its own disjoint range, and returns them in index
// order. g's cursor is not touched. workers < 1 means runtime.GOMAXPROCS(0).
//
// The context is checked before each range is computed; on cancellation the
// context's error is returned and no points are.
//
// Errors:
//   - ErrInvalidIndex / ErrInvalidCount as for Seek.
//   - ctx.Err() if the context ends first.
func Parallel(ctx context.Context, g *Generator, start, count, workers int) ([]Point, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if count > math.MaxInt/g.dims {
		return nil, fmt.Errorf("%s(%d,%d): %w", opParallel, start, count, ErrInvalidCount)
	}
	ranges, err := Partition(start, count, workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParallel, err)
	}

	out := make([]Point, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, r := range ranges {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pts, err := g.Seek(r.Start, r.Count)
			if err != nil {
				return err
			}
			copy(out[r.Start-start:], pts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opParallel, err)
	}
	return out, nil
}

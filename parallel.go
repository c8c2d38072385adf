package pixmath

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var maxParallelWorkers atomic.Int64

// SetMaxWorkers limits the goroutines used by data-parallel loops, 0 means GOMAXPROCS.
func SetMaxWorkers(n int) {
	if n < 0 {
		n = 0
	}
	maxParallelWorkers.Store(int64(n))
}

// MaxWorkers returns the effective worker limit.
func MaxWorkers() int {
	capacity := runtime.GOMAXPROCS(0)
	if limit := int(maxParallelWorkers.Load()); limit > 0 && capacity > limit {
		capacity = limit
	}
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

// parallelFor splits [0, total) into contiguous chunks and runs fn on them concurrently.
// Chunks are disjoint, fn must only write to state owned by its own chunk.
func parallelFor(total int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	workers := MaxWorkers()
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	step := (total + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < total; start += step {
		end := start + step
		if end > total {
			end = total
		}
		s, e := start, end
		g.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	_ = g.Wait()
}

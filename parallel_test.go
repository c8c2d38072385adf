package pixmath

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 64} {
		withWorkers(t, workers)

		for _, total := range []int{0, 1, 7, 100} {
			hits := make([]atomic.Int32, total)
			parallelFor(total, func(start, end int) {
				for i := start; i < end; i++ {
					hits[i].Add(1)
				}
			})
			for i := range hits {
				if n := hits[i].Load(); n != 1 {
					t.Fatalf("workers %d total %d: index %d visited %d times", workers, total, i, n)
				}
			}
		}
	}
}

func TestMaxWorkers(t *testing.T) {
	withWorkers(t, -3)
	if MaxWorkers() != runtime.GOMAXPROCS(0) {
		t.Fatalf("negative limit must mean GOMAXPROCS, got %d", MaxWorkers())
	}

	SetMaxWorkers(1)
	if MaxWorkers() != 1 {
		t.Fatalf("unexpected limit %d", MaxWorkers())
	}
}

package parallel

import (
	"runtime"
	"sync"
)

// For splits n items into contiguous index ranges and runs fn over each
// range on its own goroutine, one worker per available core at most.
// It returns after every worker has finished.
func For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForWithThreshold runs fn sequentially over the whole range when n is at or
// below threshold, and falls back to For otherwise. Small batches are not
// worth the goroutine fan-out.
func ForWithThreshold(n, threshold int, fn func(start, end int)) {
	if n <= threshold {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	For(n, fn)
}

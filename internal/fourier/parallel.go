package fourier

import "sync"

// minRowsPerWorker keeps small grids on the calling goroutine.
const minRowsPerWorker = 16

// parallelFor runs fn over [0, n) split into contiguous chunks.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers <= 1 || n <= minRowsPerWorker {
		fn(0, n)
		return
	}
	if n/minRowsPerWorker < workers {
		workers = n / minRowsPerWorker
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

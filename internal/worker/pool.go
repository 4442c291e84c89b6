// Package worker fans indexed work out over a bounded number of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ForEach calls fn for every index in [0, n) on at most workers goroutines
// and returns how many calls were made. With one worker the calls run in
// index order. No call starts once ctx is done; calls already running get
// the same ctx. A positive rps spaces call starts 1/rps apart across all
// workers, whatever the worker count; the first call starts at once. An rps
// too large to express as an interval means unlimited.
func ForEach(ctx context.Context, n, workers, rps int, fn func(ctx context.Context, i int)) int {
	if n <= 0 || fn == nil {
		return 0
	}
	workers = max(1, min(workers, n))

	var tick <-chan time.Time
	if rps > 0 {
		if interval := time.Second / time.Duration(rps); interval > 0 {
			t := time.NewTicker(interval)
			defer t.Stop()
			tick = t.C
		}
	}

	indexes := make(chan int)
	var (
		wg      sync.WaitGroup
		started atomic.Int64
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				started.Add(1)
				fn(ctx, i)
			}
		}()
	}

feed:
	for i := range n {
		if tick != nil && i > 0 {
			select {
			case <-ctx.Done():
				break feed
			case <-tick:
			}
		}
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	return int(started.Load())
}

// Package parallel implements the single "cancellable parallel search"
// pattern that rubbishrsa's prime generation, Pollard's rho, and brute-force
// attacks all reduce to: spawn a fixed number of workers, let each one step
// through its own part of a search space, and stop everyone as soon as any
// worker reports a result.
//
// The shape is grounded on the context+WaitGroup worker fan-out used for
// concurrent prime search in the wider Go crypto ecosystem and on the
// atomic-stop-flag worker pool idiom used for brute-force search tools.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Outcome is what a single step of a worker's loop reports back to Search.
type Outcome int

const (
	// Continue means the worker has not found anything yet and should be
	// called again.
	Continue Outcome = iota
	// Found means the worker's result is the answer; Search publishes it
	// and tells every other worker to stop.
	Found
	// Exhausted means this worker's slice of the search space is used up;
	// it takes no further part, but other workers keep going.
	Exhausted
)

// Step is called repeatedly by worker workerID until it returns something
// other than Continue. It must be safe to call concurrently from distinct
// workerIDs, and should check ctx.Done() reasonably often in expensive
// candidates so cancellation latency stays low.
type Step[R any] func(ctx context.Context, workerID int) (R, Outcome)

// Search runs workers concurrent instances of step and returns the result of
// the first one to report Found. If every worker reports Exhausted (or the
// context is cancelled) before any Found, ok is false.
//
// workers == 0 means runtime.NumCPU().
func Search[R any](ctx context.Context, workers int, step Step[R]) (result R, ok bool) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		found   atomic.Bool
		publish sync.Once
		wg      sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			for {
				if found.Load() || ctx.Err() != nil {
					return
				}
				r, outcome := step(ctx, workerID)
				switch outcome {
				case Found:
					if !found.Swap(true) {
						publish.Do(func() {
							result = r
							ok = true
						})
					}
					cancel()
					return
				case Exhausted:
					return
				case Continue:
					// loop again
				}
			}
		}(i)
	}

	wg.Wait()
	return result, ok
}

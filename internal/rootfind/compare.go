package rootfind

import (
	"context"
	"sync"
	"time"
)

// Outcome pairs a request with its result.
type Outcome struct {
	Request Request
	Result  *Result
	Err     error
	Elapsed time.Duration
}

// Compare solves every request concurrently. Outcomes are returned in the
// order of reqs.
func Compare(ctx context.Context, reqs []Request) []Outcome {
	return defaultRegistry.Compare(ctx, reqs)
}

func (r *Registry) Compare(ctx context.Context, reqs []Request) []Outcome {
	outcomes := make([]Outcome, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			start := time.Now()
			res, err := r.Solve(ctx, reqs[idx])
			outcomes[idx] = Outcome{
				Request: reqs[idx],
				Result:  res,
				Err:     err,
				Elapsed: time.Since(start),
			}
		}(i)
	}

	wg.Wait()
	return outcomes
}

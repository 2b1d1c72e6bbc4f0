package rootfind

import (
	"context"
	"math"
)

// stepper advances one method by a single iteration. step returns the
// record to append, the current estimate and whether the tolerance test
// passed.
type stepper interface {
	validate() error
	step(iter int) (rec Record, estimate float64, done bool, err error)
}

type run struct {
	records  []Record
	estimate float64
	status   Status
	failedAt int
}

// iterate drives s for at most maxIter iterations. A failed run carries no
// records. An estimate that is not finite fails the run.
func iterate(ctx context.Context, s stepper, maxIter int) (run, error) {
	if err := s.validate(); err != nil {
		return run{status: StatusFailed}, err
	}

	out := run{records: make([]Record, 0, min(maxIter, 64))}
	for i := 1; i <= maxIter; i++ {
		select {
		case <-ctx.Done():
			return run{status: StatusFailed, failedAt: i}, ctx.Err()
		default:
		}

		rec, estimate, done, err := s.step(i)
		if err != nil {
			return run{status: StatusFailed, failedAt: i}, err
		}
		if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
			return run{status: StatusFailed, failedAt: i}, ErrNonFinite
		}

		out.records = append(out.records, rec)
		out.estimate = estimate
		if done {
			out.status = StatusConverged
			return out, nil
		}
	}

	out.status = StatusExhausted
	return out, nil
}

package rootfind

import "math"

type newton struct {
	f, df Func
	x0    float64
	tol   float64
}

func newNewton(f, df Func, x0, tol float64) *newton {
	return &newton{f: f, df: df, x0: x0, tol: tol}
}

// The zero-derivative check runs on every step, not only the first.
func (s *newton) validate() error { return nil }

func (s *newton) step(iter int) (Record, float64, bool, error) {
	fx, err := s.f(s.x0)
	if err != nil {
		return nil, 0, false, err
	}
	dfx, err := s.df(s.x0)
	if err != nil {
		return nil, 0, false, err
	}
	if dfx == 0 {
		return nil, 0, false, ErrZeroDerivative
	}

	x1 := s.x0 - fx/dfx
	rec := NewtonRecord{Iteration: iter, X0: s.x0, FX0: fx, DFX0: dfx, X1: x1}
	done := math.Abs(x1-s.x0) < s.tol
	s.x0 = x1
	return rec, x1, done, nil
}

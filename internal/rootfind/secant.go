package rootfind

import "math"

type secant struct {
	f      Func
	x0, x1 float64
	tol    float64
}

func newSecant(f Func, x0, x1, tol float64) *secant {
	return &secant{f: f, x0: x0, x1: x1, tol: tol}
}

func (s *secant) validate() error { return nil }

func (s *secant) step(iter int) (Record, float64, bool, error) {
	fx0, err := s.f(s.x0)
	if err != nil {
		return nil, 0, false, err
	}
	fx1, err := s.f(s.x1)
	if err != nil {
		return nil, 0, false, err
	}
	if fx1-fx0 == 0 {
		return nil, 0, false, ErrDivisionByZero
	}

	x2 := s.x1 - fx1*(s.x1-s.x0)/(fx1-fx0)
	rec := SecantRecord{Iteration: iter, X0: s.x0, X1: s.x1, FX0: fx0, FX1: fx1, X2: x2}
	done := math.Abs(x2-s.x1) < s.tol
	s.x0, s.x1 = s.x1, x2
	return rec, x2, done, nil
}

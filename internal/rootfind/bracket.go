package rootfind

import "math"

// bracket implements bisection and false position; they differ only in
// where the next estimate is placed inside [a, b].
type bracket struct {
	f      Func
	a, b   float64
	fa, fb float64
	tol    float64
	next   func(a, b, fa, fb float64) float64
}

func midpoint(a, b, _, _ float64) float64 { return (a + b) / 2 }

func interpolate(a, b, fa, fb float64) float64 { return (a*fb - b*fa) / (fb - fa) }

func newBisection(f Func, a, b, tol float64) *bracket {
	return &bracket{f: f, a: a, b: b, tol: tol, next: midpoint}
}

func newFalsePosition(f Func, a, b, tol float64) *bracket {
	return &bracket{f: f, a: a, b: b, tol: tol, next: interpolate}
}

func (s *bracket) validate() error {
	var err error
	if s.fa, err = s.f(s.a); err != nil {
		return err
	}
	if s.fb, err = s.f(s.b); err != nil {
		return err
	}
	if !opposite(s.fa, s.fb) {
		return ErrInvalidInterval
	}
	return nil
}

func (s *bracket) step(iter int) (Record, float64, bool, error) {
	c := s.next(s.a, s.b, s.fa, s.fb)
	fc, err := s.f(c)
	if err != nil {
		return nil, 0, false, err
	}

	rec := BracketRecord{Iteration: iter, A: s.a, B: s.b, C: c, FC: fc}
	if math.Abs(fc) < s.tol {
		return rec, c, true, nil
	}

	if opposite(s.fa, fc) {
		s.b, s.fb = c, fc
	} else {
		s.a, s.fa = c, fc
	}
	return rec, c, false, nil
}

// opposite is fa*fb < 0 without the underflow of the product.
func opposite(fa, fb float64) bool {
	return fa != 0 && fb != 0 && math.Signbit(fa) != math.Signbit(fb)
}

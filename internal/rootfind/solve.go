package rootfind

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/rootfind/internal/expr"
)

const (
	DefaultDecimalPlaces = 5
	DefaultMaxIter       = 50

	// MaxExactPlaces is the number of decimals that prints any float64
	// exactly; rounding to more places is the identity.
	MaxExactPlaces = 1074
)

// Tolerance returns 10^-decimalPlaces, correctly rounded.
func Tolerance(decimalPlaces int) float64 {
	tol, err := strconv.ParseFloat("1e-"+strconv.Itoa(decimalPlaces), 64)
	if err != nil {
		return math.Pow(10, -float64(decimalPlaces))
	}
	return tol
}

// Round rounds v to decimalPlaces decimal digits, ties to even on the exact
// binary value.
func Round(v float64, decimalPlaces int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || decimalPlaces >= MaxExactPlaces {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimalPlaces, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Solve runs req with the default registry.
func Solve(ctx context.Context, req Request) (*Result, error) {
	return defaultRegistry.Solve(ctx, req)
}

// Solve parses the expression, runs the requested method and rounds the
// root. The returned Result is never nil; when err is non-nil its Status is
// StatusFailed and Message holds the user-facing text.
func (r *Registry) Solve(ctx context.Context, req Request) (*Result, error) {
	res := &Result{
		Method:        req.Method,
		Expression:    req.Expression,
		DecimalPlaces: req.DecimalPlaces,
		Status:        StatusFailed,
	}
	fail := func(err error) (*Result, error) {
		res.Status = StatusFailed
		res.Root, res.Estimate = 0, 0
		res.Records = nil
		res.Message = Message(err)
		return res, err
	}

	desc, err := r.Lookup(req.Method)
	if err != nil {
		return fail(err)
	}
	res.Title = desc.Title

	if err := validateRequest(req); err != nil {
		return fail(err)
	}

	f, err := expr.Parse(req.Expression)
	if err != nil {
		return fail(err)
	}
	res.Expression = f.String()

	tol := Tolerance(req.DecimalPlaces)
	res.Tolerance = tol

	s, derivative := desc.build(f, req, tol)
	res.Derivative = derivative

	out, err := iterate(ctx, s, req.MaxIter)
	if err != nil {
		return fail(&SolveError{Method: req.Method, Iteration: out.failedAt, Wrapped: err})
	}

	res.Status = out.status
	res.Records = out.records
	res.Estimate = out.estimate
	res.Root = Round(out.estimate, req.DecimalPlaces)
	return res, nil
}

func validateRequest(req Request) error {
	if req.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal_places must be >= 0, got %d", ErrInvalidRequest, req.DecimalPlaces)
	}
	if req.MaxIter <= 0 {
		return fmt.Errorf("%w: max_iter must be positive, got %d", ErrInvalidRequest, req.MaxIter)
	}
	for name, v := range map[string]float64{"a": req.A, "b": req.B, "x0": req.X0, "x1": req.X1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidRequest, name)
		}
	}
	return nil
}

package rootfind

import (
	"errors"
	"fmt"

	"github.com/san-kum/rootfind/internal/expr"
)

var (
	// ErrInvalidInterval indicates f(a) and f(b) do not have opposite signs.
	ErrInvalidInterval = errors.New("rootfind: invalid interval")

	// ErrZeroDerivative indicates f'(x0) is exactly zero.
	ErrZeroDerivative = errors.New("rootfind: zero derivative")

	// ErrDivisionByZero indicates f(x1) - f(x0) is exactly zero.
	ErrDivisionByZero = errors.New("rootfind: division by zero")

	// ErrNonFinite indicates an iteration produced an infinite or NaN estimate.
	ErrNonFinite = errors.New("rootfind: non-finite estimate")

	// ErrInvalidRequest indicates a malformed request (unknown method, bad
	// decimal places or max_iter).
	ErrInvalidRequest = errors.New("rootfind: invalid request")
)

// SolveError wraps a failure with the method and the iteration it stopped
// at. Iteration is zero for failures before the first step.
type SolveError struct {
	Method    Method
	Iteration int
	Wrapped   error
}

func (e *SolveError) Error() string {
	if e.Iteration == 0 {
		return fmt.Sprintf("%s: %v", e.Method, e.Wrapped)
	}
	return fmt.Sprintf("%s: iteration %d: %v", e.Method, e.Iteration, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}

// Message returns the text shown to a user in place of the trace.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInterval):
		return "Invalid interval. f(a) and f(b) must have opposite signs."
	case errors.Is(err, ErrZeroDerivative):
		return "Zero derivative. Choose another initial guess."
	case errors.Is(err, ErrDivisionByZero):
		return "Division by zero."
	case errors.Is(err, ErrNonFinite):
		return "Error: the iteration diverged to a non-finite value."
	}

	var ee *expr.EvalError
	if errors.As(err, &ee) {
		return "Error: " + ee.Error()
	}
	var pe *expr.ParseError
	if errors.As(err, &pe) {
		return "Error: " + pe.Error()
	}
	return "Error: " + err.Error()
}

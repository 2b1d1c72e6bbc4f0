// Package rootfind approximates roots of a single-variable real function.
//
// Four methods are provided, all driven by one bounded loop:
//
//   - bisection: halves a bracket [a, b] with f(a)·f(b) < 0
//   - false_position: narrows the bracket at the secant through (a, f(a)), (b, f(b))
//   - newton_raphson: x1 = x0 - f(x0)/f'(x0), with f' computed symbolically once
//   - secant: Newton-Raphson with the derivative replaced by a finite slope
//
// Every iteration appends a [Record] to the trace. A solve ends in one of
// three states: converged (the tolerance test passed on the last record),
// exhausted (max_iter reached, the last estimate is returned anyway) or
// failed (a precondition or evaluation error; no root).
//
// # Example
//
//	res, err := rootfind.Solve(ctx, rootfind.Request{
//		Expression:    "x^2 - 2",
//		Method:        rootfind.Bisection,
//		DecimalPlaces: 5,
//		MaxIter:       50,
//		A:             0,
//		B:             2,
//	})
//
// # Thread Safety
//
// Solves share no state. Each call parses its own expression and owns its
// trace, so concurrent calls need no locking; [Compare] relies on this.
package rootfind

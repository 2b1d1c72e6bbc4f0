// Package expr parses and evaluates single-variable real expressions.
//
// An expression is text such as "x**3 - x - 2" or "cos(x) - x". [Parse]
// turns it into an immutable tree; the tree is evaluated numerically and
// differentiated symbolically:
//
//   - [Expression.Eval]: f(x) or an [*EvalError] on a domain failure
//   - [Expression.Derivative]: f'(x) as a new [Expression]
//   - [Expression.String]: canonical text that parses back to the same tree
//
// The only variable is x. Constants pi, E and e are recognised, as are the
// functions sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, exp, log
// (natural), ln, sqrt, abs and sign. Both ^ and ** denote exponentiation.
// Unlike sympy, where a bare e is a free symbol, e here is Euler's number,
// the same as E.
//
// # Example
//
//	f, err := expr.Parse("x^2 - 2")
//	if err != nil {
//		return err
//	}
//	df := f.Derivative() // 2*x
//	y, err := f.Eval(1.5)
//
// Expressions hold no mutable state and are safe for concurrent use.
package expr

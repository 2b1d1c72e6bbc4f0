package expr

import (
	"math"
	"strconv"
)

// Node is one vertex of an expression tree.
type Node interface {
	Eval(x float64) (float64, error)
	Diff() Node
	String() string
	prec() int
}

// Binding strength used when printing; higher binds tighter.
const (
	precAdd = iota + 1
	precMul
	precUnary
	precPow
	precAtom
)

// Num is a numeric literal or named constant.
type Num struct {
	V    float64
	Name string
}

func (n *Num) Eval(float64) (float64, error) { return n.V, nil }
func (n *Num) Diff() Node                    { return num(0) }

func (n *Num) String() string {
	if n.Name != "" {
		return n.Name
	}
	return strconv.FormatFloat(n.V, 'g', -1, 64)
}

func (n *Num) prec() int {
	if n.Name == "" && (n.V < 0 || math.Signbit(n.V)) {
		return precUnary
	}
	return precAtom
}

// Var is the variable x.
type Var struct{}

func (Var) Eval(x float64) (float64, error) { return x, nil }
func (Var) Diff() Node                      { return num(1) }
func (Var) String() string                  { return "x" }
func (Var) prec() int                       { return precAtom }

// Neg is unary minus.
type Neg struct {
	X Node
}

func (n *Neg) Eval(x float64) (float64, error) {
	v, err := n.X.Eval(x)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *Neg) Diff() Node { return neg(n.X.Diff()) }

func (n *Neg) String() string {
	return "-" + wrap(n.X, n.X.prec() < precUnary)
}

func (n *Neg) prec() int { return precUnary }

// Bin is a binary operation; Op is one of + - * / ^.
type Bin struct {
	Op   byte
	L, R Node
}

func (b *Bin) Eval(x float64) (float64, error) {
	l, err := b.L.Eval(x)
	if err != nil {
		return 0, err
	}
	r, err := b.R.Eval(x)
	if err != nil {
		return 0, err
	}

	var v float64
	switch b.Op {
	case '+':
		v = l + r
	case '-':
		v = l - r
	case '*':
		v = l * r
	case '/':
		if r == 0 {
			return 0, &EvalError{Op: "/", X: x, Reason: "division by zero"}
		}
		v = l / r
	case '^':
		v = math.Pow(l, r)
		if math.IsNaN(v) {
			return 0, &EvalError{Op: "^", X: x, Reason: "complex result"}
		}
	}
	return finite(string(b.Op), x, v)
}

func (b *Bin) Diff() Node {
	dl, dr := b.L.Diff(), b.R.Diff()
	switch b.Op {
	case '+':
		return add(dl, dr)
	case '-':
		return sub(dl, dr)
	case '*':
		return add(mul(dl, b.R), mul(b.L, dr))
	case '/':
		return div(sub(mul(dl, b.R), mul(b.L, dr)), pow(b.R, num(2)))
	}

	// power rule, exponential rule, or the general u^v case
	switch {
	case !hasVar(b.R):
		return mul(mul(b.R, pow(b.L, sub(b.R, num(1)))), dl)
	case !hasVar(b.L):
		return mul(mul(b, call("log", b.L)), dr)
	default:
		return mul(b, add(mul(dr, call("log", b.L)), div(mul(b.R, dl), b.L)))
	}
}

func (b *Bin) String() string {
	p := b.prec()
	var lp, rp bool
	switch b.Op {
	case '+':
		lp, rp = b.L.prec() < p, b.R.prec() < p
	case '-', '/':
		lp, rp = b.L.prec() < p, b.R.prec() <= p
	case '*':
		lp, rp = b.L.prec() < p, b.R.prec() < p
	case '^':
		lp, rp = b.L.prec() <= p, b.R.prec() < precUnary
	}
	op := string(b.Op)
	if b.Op == '+' || b.Op == '-' {
		op = " " + op + " "
	}
	return wrap(b.L, lp) + op + wrap(b.R, rp)
}

func (b *Bin) prec() int {
	switch b.Op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	}
	return precPow
}

// Call applies a named function to one argument.
type Call struct {
	Fn  string
	Arg Node
}

func (c *Call) Eval(x float64) (float64, error) {
	u, err := c.Arg.Eval(x)
	if err != nil {
		return 0, err
	}
	fn := functions[c.Fn]
	if fn.domain != nil && !fn.domain(u) {
		return 0, &EvalError{Op: c.Fn, X: x, Reason: fn.reason}
	}
	return finite(c.Fn, x, fn.eval(u))
}

func (c *Call) Diff() Node {
	u, du := c.Arg, c.Arg.Diff()
	switch c.Fn {
	case "sin":
		return mul(call("cos", u), du)
	case "cos":
		return neg(mul(call("sin", u), du))
	case "tan":
		return mul(add(num(1), pow(c, num(2))), du)
	case "exp":
		return mul(c, du)
	case "log":
		return div(du, u)
	case "sqrt":
		return div(du, mul(num(2), c))
	case "abs":
		return mul(call("sign", u), du)
	case "sign":
		return num(0)
	case "asin":
		return div(du, call("sqrt", sub(num(1), pow(u, num(2)))))
	case "acos":
		return neg(div(du, call("sqrt", sub(num(1), pow(u, num(2))))))
	case "atan":
		return div(du, add(num(1), pow(u, num(2))))
	case "sinh":
		return mul(call("cosh", u), du)
	case "cosh":
		return mul(call("sinh", u), du)
	case "tanh":
		return mul(sub(num(1), pow(c, num(2))), du)
	}
	panic("expr: no derivative rule for " + c.Fn)
}

func (c *Call) String() string { return c.Fn + "(" + c.Arg.String() + ")" }
func (c *Call) prec() int      { return precAtom }

func wrap(n Node, paren bool) string {
	if paren {
		return "(" + n.String() + ")"
	}
	return n.String()
}

func finite(op string, x, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvalError{Op: op, X: x, Reason: "non-finite result"}
	}
	return v, nil
}

func hasVar(n Node) bool {
	switch n := n.(type) {
	case Var:
		return true
	case *Neg:
		return hasVar(n.X)
	case *Bin:
		return hasVar(n.L) || hasVar(n.R)
	case *Call:
		return hasVar(n.Arg)
	}
	return false
}

package expr

import "math"

// Constructors used by the derivative pass. They fold constant operands and
// the 0/1 identities; nothing else is simplified.

func num(v float64) Node { return &Num{V: v} }

func constant(n Node) (float64, bool) {
	c, ok := n.(*Num)
	if !ok {
		return 0, false
	}
	return c.V, true
}

func is(n Node, v float64) bool {
	c, ok := constant(n)
	return ok && c == v
}

func folded(v float64) (Node, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return num(v), true
}

func neg(a Node) Node {
	if v, ok := constant(a); ok {
		return num(-v)
	}
	if n, ok := a.(*Neg); ok {
		return n.X
	}
	return &Neg{X: a}
}

func add(a, b Node) Node {
	av, aok := constant(a)
	bv, bok := constant(b)
	switch {
	case aok && bok:
		if n, ok := folded(av + bv); ok {
			return n
		}
	case is(a, 0):
		return b
	case is(b, 0):
		return a
	}
	if n, ok := b.(*Neg); ok {
		return &Bin{Op: '-', L: a, R: n.X}
	}
	return &Bin{Op: '+', L: a, R: b}
}

func sub(a, b Node) Node {
	av, aok := constant(a)
	bv, bok := constant(b)
	switch {
	case aok && bok:
		if n, ok := folded(av - bv); ok {
			return n
		}
	case is(b, 0):
		return a
	case is(a, 0):
		return neg(b)
	}
	return &Bin{Op: '-', L: a, R: b}
}

func mul(a, b Node) Node {
	av, aok := constant(a)
	bv, bok := constant(b)
	switch {
	case aok && bok:
		if n, ok := folded(av * bv); ok {
			return n
		}
	case is(a, 0) || is(b, 0):
		return num(0)
	case is(a, 1):
		return b
	case is(b, 1):
		return a
	case is(a, -1):
		return neg(b)
	case is(b, -1):
		return neg(a)
	}
	if n, ok := a.(*Neg); ok {
		return neg(mul(n.X, b))
	}
	if n, ok := b.(*Neg); ok {
		return neg(mul(a, n.X))
	}
	if bok && !aok {
		// keep coefficients on the left: x*2 -> 2*x
		return &Bin{Op: '*', L: b, R: a}
	}
	return &Bin{Op: '*', L: a, R: b}
}

func div(a, b Node) Node {
	av, aok := constant(a)
	bv, bok := constant(b)
	switch {
	case aok && bok && bv != 0:
		if n, ok := folded(av / bv); ok {
			return n
		}
	case is(a, 0):
		return num(0)
	case is(b, 1):
		return a
	}
	if n, ok := a.(*Neg); ok {
		return neg(div(n.X, b))
	}
	return &Bin{Op: '/', L: a, R: b}
}

func pow(a, b Node) Node {
	av, aok := constant(a)
	bv, bok := constant(b)
	switch {
	case aok && bok:
		if n, ok := folded(math.Pow(av, bv)); ok {
			return n
		}
	case is(b, 0):
		return num(1)
	case is(b, 1):
		return a
	}
	return &Bin{Op: '^', L: a, R: b}
}

func call(fn string, arg Node) Node { return &Call{Fn: fn, Arg: arg} }

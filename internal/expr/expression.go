package expr

import "strings"

// Expression is a parsed f(x). The zero value is not usable; use Parse.
type Expression struct {
	src  string
	root Node
}

// Parse parses src as an expression in x.
func Parse(src string) (*Expression, error) {
	src = strings.TrimSpace(src)
	root, err := ParseNode(src)
	if err != nil {
		return nil, err
	}
	return &Expression{src: src, root: root}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(src string) *Expression {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expression) Eval(x float64) (float64, error) { return e.root.Eval(x) }

// Derivative differentiates f with respect to x. Each call walks the tree
// again; callers that need f' repeatedly should keep the result.
func (e *Expression) Derivative() *Expression {
	d := e.root.Diff()
	return &Expression{src: d.String(), root: d}
}

// Root returns the expression tree.
func (e *Expression) Root() Node { return e.root }

// Source returns the trimmed input text.
func (e *Expression) Source() string { return e.src }

// String returns the canonical form of the expression.
func (e *Expression) String() string { return e.root.String() }

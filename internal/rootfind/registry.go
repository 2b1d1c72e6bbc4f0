package rootfind

import (
	"fmt"
	"strings"

	"github.com/san-kum/rootfind/internal/expr"
)

// Descriptor describes one method: its display title, the request fields it
// reads and the columns of its trace.
type Descriptor struct {
	Method  Method   `json:"method"`
	Title   string   `json:"title"`
	Params  []string `json:"params"`
	Columns []string `json:"columns"`

	build func(f *expr.Expression, req Request, tol float64) (stepper, string)
}

type Registry struct {
	methods map[Method]Descriptor
	order   []Method
	aliases map[string]Method
}

func NewRegistry() *Registry {
	r := &Registry{
		methods: make(map[Method]Descriptor),
		aliases: make(map[string]Method),
	}

	r.add(Descriptor{
		Method:  Bisection,
		Title:   "Bisection Method",
		Params:  []string{"a", "b"},
		Columns: []string{"Iteration", "a", "b", "c", "f(c)"},
		build: func(f *expr.Expression, req Request, tol float64) (stepper, string) {
			return newBisection(f.Eval, req.A, req.B, tol), ""
		},
	}, "bisect")
	r.add(Descriptor{
		Method:  FalsePosition,
		Title:   "False Position Method",
		Params:  []string{"a", "b"},
		Columns: []string{"Iteration", "a", "b", "c", "f(c)"},
		build: func(f *expr.Expression, req Request, tol float64) (stepper, string) {
			return newFalsePosition(f.Eval, req.A, req.B, tol), ""
		},
	}, "regula_falsi")
	r.add(Descriptor{
		Method:  NewtonRaphson,
		Title:   "Newton-Raphson Method",
		Params:  []string{"x0"},
		Columns: []string{"Iteration", "x0", "f(x0)", "f'(x0)", "x1"},
		build: func(f *expr.Expression, req Request, tol float64) (stepper, string) {
			df := f.Derivative()
			return newNewton(f.Eval, df.Eval, req.X0, tol), df.String()
		},
	}, "newton")
	r.add(Descriptor{
		Method:  Secant,
		Title:   "Secant Method",
		Params:  []string{"x0", "x1"},
		Columns: []string{"Iteration", "x0", "x1", "f(x0)", "f(x1)", "x2"},
		build: func(f *expr.Expression, req Request, tol float64) (stepper, string) {
			return newSecant(f.Eval, req.X0, req.X1, tol), ""
		},
	})

	return r
}

func (r *Registry) add(d Descriptor, aliases ...string) {
	r.methods[d.Method] = d
	r.order = append(r.order, d.Method)
	for _, a := range aliases {
		r.aliases[a] = d.Method
	}
}

func (r *Registry) Lookup(m Method) (Descriptor, error) {
	d, ok := r.methods[m]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: unknown method %q", ErrInvalidRequest, m)
	}
	return d, nil
}

// Parse resolves user input such as "Newton-Raphson" or "regula falsi" to
// a registered method.
func (r *Registry) Parse(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if _, ok := r.methods[Method(key)]; ok {
		return Method(key), nil
	}
	if m, ok := r.aliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown method %q (available: %s)", ErrInvalidRequest, name, strings.Join(r.Names(), ", "))
}

// Methods returns the descriptors in registration order.
func (r *Registry) Methods() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, m := range r.order {
		out = append(out, r.methods[m])
	}
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, m := range r.order {
		names = append(names, string(m))
	}
	return names
}

var defaultRegistry = NewRegistry()

// Lookup finds m in the default registry.
func Lookup(m Method) (Descriptor, error) { return defaultRegistry.Lookup(m) }

// ParseMethod resolves name against the default registry.
func ParseMethod(name string) (Method, error) { return defaultRegistry.Parse(name) }

// Methods lists the default registry.
func Methods() []Descriptor { return defaultRegistry.Methods() }

package scan

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/rootfind/internal/rootfind"
)

var ErrBadGrid = errors.New("scan: grid needs min < max and at least one step")

// Bracket is an interval on which f changes sign. Exact brackets have A == B
// and f(A) == 0.
type Bracket struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	FA    float64 `json:"fa"`
	FB    float64 `json:"fb"`
	Exact bool    `json:"exact,omitempty"`
}

// Grid walks [Min, Max] in Steps equal cells looking for sign changes.
type Grid struct {
	Min, Max float64
	Steps    int
}

func NewGrid(min, max float64, steps int) *Grid {
	return &Grid{Min: min, Max: max, Steps: steps}
}

// Search returns the brackets in increasing x. Points where f is undefined
// break the walk, and a sign change whose midpoint is larger in magnitude
// than both ends is treated as a pole and dropped.
func (g *Grid) Search(ctx context.Context, fn rootfind.Func) ([]Bracket, error) {
	if g.Steps < 1 || !(g.Min < g.Max) {
		return nil, ErrBadGrid
	}

	var out []Bracket
	h := (g.Max - g.Min) / float64(g.Steps)

	prevOK := false
	var px, pf float64
	for i := 0; i <= g.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		x := g.Min + float64(i)*h
		if i == g.Steps {
			x = g.Max
		}
		fx, err := fn(x)
		if err != nil {
			prevOK = false
			continue
		}

		if fx == 0 {
			out = append(out, Bracket{A: x, B: x, Exact: true})
		} else if prevOK && pf != 0 && math.Signbit(pf) != math.Signbit(fx) && !pole(fn, px, x, pf, fx) {
			out = append(out, Bracket{A: px, B: x, FA: pf, FB: fx})
		}
		px, pf, prevOK = x, fx, true
	}
	return out, nil
}

func pole(fn rootfind.Func, a, b, fa, fb float64) bool {
	fm, err := fn((a + b) / 2)
	if err != nil {
		return true
	}
	return math.Abs(fm) > math.Max(math.Abs(fa), math.Abs(fb))
}

// Requests turns each non-exact bracket into a bisection-style request for
// method, copying the other fields from base.
func Requests(base rootfind.Request, method rootfind.Method, brackets []Bracket) []rootfind.Request {
	var reqs []rootfind.Request
	for _, br := range brackets {
		if br.Exact {
			continue
		}
		req := base
		req.Method = method
		req.A, req.B = br.A, br.B
		req.X0, req.X1 = br.A, br.B
		reqs = append(reqs, req)
	}
	return reqs
}

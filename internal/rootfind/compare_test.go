package rootfind

import (
	"context"
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	base := Request{Expression: "x^3 - x - 2", DecimalPlaces: 5, MaxIter: 50, A: 1, B: 2, X0: 1, X1: 2}

	reqs := make([]Request, 0, 5)
	for _, m := range []Method{Bisection, FalsePosition, NewtonRaphson, Secant} {
		r := base
		r.Method = m
		reqs = append(reqs, r)
	}
	bad := base
	bad.Method = Bisection
	bad.A, bad.B = 2, 3
	reqs = append(reqs, bad)

	outcomes := Compare(context.Background(), reqs)
	if len(outcomes) != len(reqs) {
		t.Fatalf("expected %d outcomes, got %d", len(reqs), len(outcomes))
	}

	for i, o := range outcomes[:4] {
		if o.Request.Method != reqs[i].Method {
			t.Errorf("outcome %d is for %s, want %s", i, o.Request.Method, reqs[i].Method)
		}
		if o.Err != nil {
			t.Errorf("%s failed: %v", o.Request.Method, o.Err)
			continue
		}
		if o.Result.Root != 1.52138 {
			t.Errorf("%s: root = %v, want 1.52138", o.Request.Method, o.Result.Root)
		}
	}

	last := outcomes[4]
	if !errors.Is(last.Err, ErrInvalidInterval) {
		t.Errorf("expected invalid interval, got %v", last.Err)
	}
	if last.Result == nil || last.Result.Status != StatusFailed {
		t.Error("failed outcome has no failed result")
	}
}

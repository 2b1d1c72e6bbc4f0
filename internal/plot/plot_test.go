package plot

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/rootfind/internal/expr"
)

func TestSample(t *testing.T) {
	s := Sample(expr.MustParse("x^2").Eval, DefaultDomain)
	if len(s.X) != 400 || len(s.Y) != 400 {
		t.Fatalf("expected 400 samples, got %d", len(s.X))
	}
	if s.X[0] != -10 || s.X[399] != 10 {
		t.Errorf("domain = [%v, %v]", s.X[0], s.X[399])
	}
	if s.Y[0] != 100 {
		t.Errorf("f(-10) = %v, want 100", s.Y[0])
	}
	if s.Gaps() != 0 {
		t.Errorf("unexpected gaps: %d", s.Gaps())
	}
}

func TestSample_Gaps(t *testing.T) {
	s := Sample(expr.MustParse("sqrt(x)").Eval, Domain{Min: -1, Max: 1, Points: 5})
	// x = -1, -0.5 are undefined
	if s.Gaps() != 2 {
		t.Errorf("gaps = %d, want 2", s.Gaps())
	}
	if !math.IsNaN(s.Y[0]) || s.Y[4] != 1 {
		t.Errorf("Y = %v", s.Y)
	}

	lo, hi, err := s.Bounds()
	if err != nil || lo != 0 || hi != 1 {
		t.Errorf("Bounds = %v, %v, %v", lo, hi, err)
	}
}

func TestBounds_NoData(t *testing.T) {
	s := Sample(expr.MustParse("log(-1 - x^2)").Eval, DefaultDomain)
	if _, _, err := s.Bounds(); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}

	f := New(expr.MustParse("log(-1 - x^2)"), DefaultDomain)
	if _, err := f.SVG(640, 480); !errors.Is(err, ErrNoData) {
		t.Errorf("SVG: expected ErrNoData, got %v", err)
	}
	if _, err := f.ASCII(60, 10); !errors.Is(err, ErrNoData) {
		t.Errorf("ASCII: expected ErrNoData, got %v", err)
	}
}

func TestSVG(t *testing.T) {
	f := New(expr.MustParse("x^2 - 2"), DefaultDomain).MarkRoot(1.41421)
	out, err := f.SVG(640, 480)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	svg := string(out)

	for _, want := range []string{"<svg", Title, "Root at x = 1.41421", `class="root"`, `class="axis"`, `class="curve"`, "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Count(svg, " M") != 1 {
		t.Errorf("continuous curve should have one subpath")
	}
}

func TestSVG_GapsSplitPath(t *testing.T) {
	f := New(expr.MustParse("1/(x - 0.5)"), Domain{Min: -1, Max: 1, Points: 5})
	out, err := f.SVG(320, 240)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	if strings.Count(string(out), " M") != 2 {
		t.Errorf("expected the pole to split the curve:\n%s", out)
	}
	if strings.Contains(string(out), `class="root"`) {
		t.Errorf("no root line expected without MarkRoot")
	}
}

func TestASCII(t *testing.T) {
	f := New(expr.MustParse("cos(x) - x"), DefaultDomain).MarkRoot(0.7390851)
	out, err := f.ASCII(60, 10)
	if err != nil {
		t.Fatalf("ASCII failed: %v", err)
	}
	if !strings.Contains(out, "Root at x = 0.73909") {
		t.Errorf("caption missing:\n%s", out)
	}
}

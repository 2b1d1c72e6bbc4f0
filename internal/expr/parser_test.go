package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParse_String(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x**2 - 2", "x^2 - 2"},
		{"x^2-2", "x^2 - 2"},
		{"  x^3 - x - 2  ", "x^3 - x - 2"},
		{"-x^2", "-x^2"},
		{"(-x)^2", "(-x)^2"},
		{"(x+1)*(x-1)", "(x + 1)*(x - 1)"},
		{"x - (x - 1)", "x - (x - 1)"},
		{"2^3^2", "2^3^2"},
		{"ln(x)", "log(x)"},
		{"pi*x", "pi*x"},
		{"cos(x) - x", "cos(x) - x"},
		{"+x", "x"},
		{"1e-3*x", "0.001*x"},
		{"x/(2*x)", "x/(2*x)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got := e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"x^3 - x - 2",
		"-(x*x) + 3/(x - 4)",
		"exp(-x^2) * sin(2*pi*x)",
		"(x - 1)^-2",
		"x^(1/3) - 2",
		"abs(x - 1) - 0.5",
	}

	for _, in := range inputs {
		first := MustParse(in)
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", first.String(), err)
		}
		if second.String() != first.String() {
			t.Errorf("round trip changed %q into %q", first.String(), second.String())
		}
		for _, x := range []float64{0.3, 1.7, 2.9} {
			a, errA := first.Eval(x)
			b, errB := second.Eval(x)
			if (errA == nil) != (errB == nil) || math.Abs(a-b) > 1e-12 {
				t.Errorf("%q at x=%g: %v/%v vs %v/%v", in, x, a, errA, b, errB)
			}
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int
	}{
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"dangling operator", "x +", 3},
		{"unclosed paren", "2*(x", 4},
		{"unknown variable", "y + 1", 0},
		{"bad character", "x $ 2", 2},
		{"function without parens", "sin x", 4},
		{"bad number", "1.2.3", 0},
		{"trailing token", "x 2", 2},
		{"empty parens", "()", 1},
		{"non-ascii letter", "x + \u00e9", 4},
		{"invalid utf8", "x + \xc3", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Offset != tt.offset {
				t.Errorf("offset = %d, want %d (%v)", pe.Offset, tt.offset, err)
			}
		})
	}
}

func TestParse_Unicode(t *testing.T) {
	_, err := Parse("2*\u00c3x")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Offset != 2 || !strings.Contains(pe.Msg, "'\u00c3'") {
		t.Errorf("got offset %d msg %q, want the whole rune at 2", pe.Offset, pe.Msg)
	}

	f, err := Parse("x\u00a0+ 1")
	if err != nil {
		t.Fatalf("no-break space: %v", err)
	}
	if got := f.String(); got != "x + 1" {
		t.Errorf("String() = %q, want x + 1", got)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("x +")
}

package expr

import "math"

type function struct {
	eval   func(float64) float64
	domain func(float64) bool
	reason string
}

func positive(u float64) bool    { return u > 0 }
func nonNegative(u float64) bool { return u >= 0 }
func unit(u float64) bool        { return u >= -1 && u <= 1 }

func sign(u float64) float64 {
	switch {
	case u > 0:
		return 1
	case u < 0:
		return -1
	}
	return 0
}

var functions = map[string]function{
	"sin":  {eval: math.Sin},
	"cos":  {eval: math.Cos},
	"tan":  {eval: math.Tan},
	"asin": {eval: math.Asin, domain: unit, reason: "argument outside [-1, 1]"},
	"acos": {eval: math.Acos, domain: unit, reason: "argument outside [-1, 1]"},
	"atan": {eval: math.Atan},
	"sinh": {eval: math.Sinh},
	"cosh": {eval: math.Cosh},
	"tanh": {eval: math.Tanh},
	"exp":  {eval: math.Exp},
	"log":  {eval: math.Log, domain: positive, reason: "logarithm of a non-positive number"},
	"sqrt": {eval: math.Sqrt, domain: nonNegative, reason: "square root of a negative number"},
	"abs":  {eval: math.Abs},
	"sign": {eval: sign},
}

// aliases map accepted spellings onto canonical function names.
var aliases = map[string]string{
	"ln": "log",
}

var constants = map[string]float64{
	"pi": math.Pi,
	"E":  math.E,
	"e":  math.E,
}

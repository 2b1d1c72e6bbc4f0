package config

import (
	"sort"

	"github.com/san-kum/rootfind/internal/rootfind"
)

var Presets = map[rootfind.Method]map[string]*Config{
	rootfind.Bisection: {
		"sqrt2": {
			Function: "x^2 - 2", Method: rootfind.Bisection, DecimalPlaces: 5, MaxIter: 50,
			Interval: IntervalConfig{A: 0, B: 2},
		},
		"cubic": {
			Function: "x^3 - x - 2", Method: rootfind.Bisection, DecimalPlaces: 5, MaxIter: 50,
			Interval: IntervalConfig{A: 1, B: 2},
		},
		"cosine": {
			Function: "cos(x) - x", Method: rootfind.Bisection, DecimalPlaces: 5, MaxIter: 50,
			Interval: IntervalConfig{A: 0, B: 1},
		},
	},
	rootfind.FalsePosition: {
		"sqrt2": {
			Function: "x^2 - 2", Method: rootfind.FalsePosition, DecimalPlaces: 5, MaxIter: 50,
			Interval: IntervalConfig{A: 0, B: 2},
		},
		"cubic": {
			Function: "x^3 - x - 2", Method: rootfind.FalsePosition, DecimalPlaces: 5, MaxIter: 50,
			Interval: IntervalConfig{A: 1, B: 2},
		},
		"cosine": {
			Function: "cos(x) - x", Method: rootfind.FalsePosition, DecimalPlaces: 6, MaxIter: 50,
			Interval: IntervalConfig{A: 0, B: 1},
		},
	},
	rootfind.NewtonRaphson: {
		"cubic": {
			Function: "x^3 - x - 2", Method: rootfind.NewtonRaphson, DecimalPlaces: 5, MaxIter: 50,
			Guess: GuessConfig{X0: 1.5},
		},
		"sqrt2": {
			Function: "x^2 - 2", Method: rootfind.NewtonRaphson, DecimalPlaces: 8, MaxIter: 50,
			Guess: GuessConfig{X0: 1},
		},
		"ln3": {
			Function: "exp(x) - 3", Method: rootfind.NewtonRaphson, DecimalPlaces: 6, MaxIter: 50,
			Guess: GuessConfig{X0: 1},
		},
	},
	rootfind.Secant: {
		"cubic": {
			Function: "x^3 - x - 2", Method: rootfind.Secant, DecimalPlaces: 5, MaxIter: 50,
			Guess: GuessConfig{X0: 1, X1: 2},
		},
		"cosine": {
			Function: "cos(x) - x", Method: rootfind.Secant, DecimalPlaces: 6, MaxIter: 50,
			Guess: GuessConfig{X0: 0, X1: 1},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(method rootfind.Method, preset string) *Config {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	cfg, ok := methodPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(method rootfind.Method) []string {
	methodPresets, ok := Presets[method]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(methodPresets))
	for name := range methodPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

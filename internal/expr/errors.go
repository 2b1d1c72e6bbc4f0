package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates the input is not a valid expression in x.
	ErrParse = errors.New("expr: parse error")

	// ErrEval indicates the expression is undefined at the requested point.
	ErrEval = errors.New("expr: evaluation error")
)

// ParseError reports where and why parsing failed.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// EvalError reports a domain failure during evaluation.
type EvalError struct {
	Op     string
	X      float64
	Reason string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s undefined at x=%g: %s", e.Op, e.X, e.Reason)
}

func (e *EvalError) Is(target error) bool { return target == ErrEval }

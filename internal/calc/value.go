// Package calc holds the numeric core shared by every calculator widget:
// parsing raw field text, the percentage and arithmetic formulas, and the
// locale-aware rendering of their results.
//
// Every function is pure. Undefined operations (division by zero, unparsable
// input, overflow) never panic and never leak NaN or Inf; they produce an
// invalid [Value], which the formatter renders as [Placeholder].
package calc

import (
	"errors"
	"math"
)

// ErrInvalidOperand is the single error kind of the calculation core. Glue
// code wraps it with the offending field when it needs an error value.
var ErrInvalidOperand = errors.New("invalid operand")

// Value is the result of parsing or computing a number. It is either valid
// and holds a finite float64, or invalid and holds nothing.
//
// The zero Value is invalid.
type Value struct {
	n     float64
	valid bool
}

// Valid wraps a float64. Non-finite inputs produce an invalid Value so that
// NaN and Inf never reach the formatter. Negative zero is normalized.
func Valid(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{}
	}
	if n == 0 {
		n = 0
	}
	return Value{n: n, valid: true}
}

// Invalid returns the invalid marker.
func Invalid() Value {
	return Value{}
}

// IsValid reports whether v holds a number.
func (v Value) IsValid() bool {
	return v.valid
}

// Float returns the number and whether v is valid.
func (v Value) Float() (float64, bool) {
	return v.n, v.valid
}

// Direction tags the sign of a percentage change.
type Direction int

const (
	NoChange Direction = iota
	Increase
	Decrease
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "no change"
	}
}

// Change is the result of a percentage-change calculation.
type Change struct {
	Percent   Value
	Direction Direction
}

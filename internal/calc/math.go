package calc

import "strings"

// PercentageChange returns (end-start)/start*100. A zero start has no
// defined change and yields an invalid Value.
func PercentageChange(start, end float64) Value {
	if start == 0 {
		return Invalid()
	}
	return Valid((end - start) / start * 100)
}

// ChangeBetween is PercentageChange tagged with the direction of its sign.
func ChangeBetween(start, end float64) Change {
	pct := PercentageChange(start, end)
	n, ok := pct.Float()
	if !ok {
		return Change{Percent: pct, Direction: NoChange}
	}
	return Change{Percent: pct, Direction: directionOf(n)}
}

func directionOf(n float64) Direction {
	switch {
	case n > 0:
		return Increase
	case n < 0:
		return Decrease
	default:
		return NoChange
	}
}

// PercentOf returns the share of whole that part represents, scaled to
// 0-100. A zero whole yields an invalid Value.
func PercentOf(part, whole float64) Value {
	if whole == 0 {
		return Invalid()
	}
	return Valid(part / whole * 100)
}

// PercentageOfValue answers "what is percent% of whole".
func PercentageOfValue(percent, whole float64) Value {
	return Valid(percent / 100 * whole)
}

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply is total; overflow saturates to ±Inf and is turned into an
// invalid Value only once the caller wraps it with Valid.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b, or an invalid Value when b is zero.
func Divide(a, b float64) Value {
	if b == 0 {
		return Invalid()
	}
	return Valid(a / b)
}

// Operator is one of the four arithmetic operations.
type Operator rune

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

func (op Operator) String() string {
	return string(op)
}

// ParseOperator recognizes + - * / and the common aliases x, × and ÷.
func ParseOperator(raw string) (Operator, bool) {
	switch strings.TrimSpace(raw) {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "X", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	default:
		return 0, false
	}
}

// Apply evaluates a op b. Unknown operators yield an invalid Value.
func Apply(op Operator, a, b float64) Value {
	switch op {
	case OpAdd:
		return Valid(Add(a, b))
	case OpSubtract:
		return Valid(Subtract(a, b))
	case OpMultiply:
		return Valid(Multiply(a, b))
	case OpDivide:
		return Divide(a, b)
	default:
		return Invalid()
	}
}

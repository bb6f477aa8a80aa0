package calc

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts plain decimal notation only. strconv.ParseFloat
// on its own would also let through "NaN", "Inf", hex floats and
// underscore-separated digits.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber converts raw field text into a Value. Surrounding whitespace is
// ignored; empty, malformed or out-of-range input yields an invalid Value.
func ToNumber(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" || !decimalPattern.MatchString(s) {
		return Invalid()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Invalid()
	}
	return Valid(n)
}

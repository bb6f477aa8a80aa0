package calc

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown in place of any invalid result.
const Placeholder = "—"

const (
	// DefaultFractionDigits is the display precision used when none is
	// configured.
	DefaultFractionDigits = 2
	// MaxFractionDigits caps precision at what a float64 can meaningfully
	// carry.
	MaxFractionDigits = 15
)

// Style selects plain-number or percentage rendering.
type Style int

const (
	StyleNumber Style = iota
	StylePercent
)

func (s Style) String() string {
	if s == StylePercent {
		return "percent"
	}
	return "number"
}

// FormatOptions controls how results are displayed.
type FormatOptions struct {
	MaximumFractionDigits int
	Style                 Style
	// Locale drives digit grouping and the decimal separator. The zero tag
	// is treated as English.
	Locale language.Tag
}

// DefaultFormatOptions returns two fraction digits, number style, English.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MaximumFractionDigits: DefaultFractionDigits,
		Style:                 StyleNumber,
		Locale:                language.English,
	}
}

// Format renders v according to opts.Style.
func Format(v Value, opts FormatOptions) string {
	if opts.Style == StylePercent {
		return FormatPercent(v, opts)
	}
	return FormatNumber(v, opts)
}

// FormatNumber renders v with locale grouping and at most
// opts.MaximumFractionDigits fraction digits, trailing zeros trimmed.
func FormatNumber(v Value, opts FormatOptions) string {
	n, ok := v.Float()
	if !ok {
		return Placeholder
	}
	return formatDecimal(n, opts)
}

// FormatPercent renders an already-scaled percentage (50 means 50%). It
// does not multiply by 100.
func FormatPercent(v Value, opts FormatOptions) string {
	n, ok := v.Float()
	if !ok {
		return Placeholder
	}
	return formatDecimal(n, opts) + "%"
}

// FormatChange renders a percentage change with an explicit sign, so an
// increase reads "+50%" and a decrease "-25%". The sign follows the
// displayed digits: a change that rounds to zero prints "0%".
func FormatChange(c Change, opts FormatOptions) string {
	c = c.Rounded(opts)
	out := FormatPercent(c.Percent, opts)
	if c.Direction == Increase {
		return "+" + out
	}
	return out
}

// Rounded returns c rounded to the precision of opts, with the direction
// recomputed from the rounded percentage.
func (c Change) Rounded(opts FormatOptions) Change {
	n, ok := c.Percent.Float()
	if !ok {
		return Change{Percent: c.Percent, Direction: NoChange}
	}
	n = roundTo(n, clampDigits(opts.MaximumFractionDigits))
	return Change{Percent: Valid(n), Direction: directionOf(n)}
}

// formatDecimal rounds half away from zero itself and hands the printer a
// value that is already at the target precision, so it never re-rounds a
// half to even.
func formatDecimal(n float64, opts FormatOptions) string {
	digits := clampDigits(opts.MaximumFractionDigits)
	n = roundTo(n, digits)
	tag := opts.Locale
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(digits)))
}

func clampDigits(digits int) int {
	if digits < 0 {
		return 0
	}
	if digits > MaxFractionDigits {
		return MaxFractionDigits
	}
	return digits
}

// roundTo rounds n to digits fraction digits, halves away from zero. A
// result of zero is always +0.
func roundTo(n float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	scaled := n * scale
	if math.IsInf(scaled, 0) {
		// Too large to carry any fraction digits.
		return n
	}
	r := math.Round(scaled) / scale
	if r == 0 {
		return 0
	}
	return r
}

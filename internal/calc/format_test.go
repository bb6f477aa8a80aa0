package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatInvalidIsPlaceholder(t *testing.T) {
	for _, opts := range []FormatOptions{
		DefaultFormatOptions(),
		{MaximumFractionDigits: 0, Style: StylePercent},
		{MaximumFractionDigits: 9, Locale: language.German},
	} {
		assert.Equal(t, Placeholder, FormatNumber(Invalid(), opts))
		assert.Equal(t, Placeholder, FormatPercent(Invalid(), opts))
		assert.Equal(t, Placeholder, Format(Invalid(), opts))
		assert.Equal(t, Placeholder, FormatChange(Change{}, opts))
	}
}

func TestFormatNumber(t *testing.T) {
	opts := DefaultFormatOptions()
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 42, want: "42"},
		{name: "trailing zeros trimmed", in: 12.5, want: "12.5"},
		{name: "rounded to two digits", in: 2.0 / 3.0, want: "0.67"},
		{name: "grouping", in: 1234567.891, want: "1,234,567.89"},
		{name: "negative", in: -3.5, want: "-3.5"},
		{name: "rounds to zero", in: -0.001, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(Valid(tt.in), opts))
		})
	}
}

func TestFormatNumberPrecision(t *testing.T) {
	opts := DefaultFormatOptions()
	opts.MaximumFractionDigits = 0
	assert.Equal(t, "13", FormatNumber(Valid(12.6), opts))

	opts.MaximumFractionDigits = -4
	assert.Equal(t, "13", FormatNumber(Valid(12.6), opts))

	opts.MaximumFractionDigits = 4
	assert.Equal(t, "3.1416", FormatNumber(Valid(3.14159265), opts))
}

func TestFormatNumberLocale(t *testing.T) {
	opts := DefaultFormatOptions()
	opts.Locale = language.German
	assert.Equal(t, "1.234,5", FormatNumber(Valid(1234.5), opts))

	opts.Locale = language.Und
	assert.Equal(t, "1,234.5", FormatNumber(Valid(1234.5), opts))
}

func TestFormatPercent(t *testing.T) {
	opts := DefaultFormatOptions()
	assert.Equal(t, "50%", FormatPercent(Valid(50), opts))
	assert.Equal(t, "12.5%", FormatPercent(Valid(12.5), opts))

	opts.Style = StylePercent
	assert.Equal(t, "50%", Format(Valid(50), opts), "percent style must not rescale")
}

func TestFormatChange(t *testing.T) {
	opts := DefaultFormatOptions()
	assert.Equal(t, "+50%", FormatChange(ChangeBetween(100, 150), opts))
	assert.Equal(t, "-25%", FormatChange(ChangeBetween(100, 75), opts))
	assert.Equal(t, "0%", FormatChange(ChangeBetween(100, 100), opts))
	assert.Equal(t, Placeholder, FormatChange(ChangeBetween(0, 10), opts))
}

func TestFormatRoundsHalfAwayFromZero(t *testing.T) {
	d0 := DefaultFormatOptions()
	d0.MaximumFractionDigits = 0
	d2 := DefaultFormatOptions()

	tests := []struct {
		name string
		in   float64
		opts FormatOptions
		want string
	}{
		{name: "negative half", in: -0.5, opts: d0, want: "-1"},
		{name: "negative below half", in: -0.4, opts: d0, want: "0"},
		{name: "positive half", in: 2.5, opts: d0, want: "3"},
		{name: "half at two digits", in: 0.125, opts: d2, want: "0.13"},
		{name: "negative half at two digits", in: -0.125, opts: d2, want: "-0.13"},
		{name: "tiny negative", in: -0.004, opts: d2, want: "0"},
		{name: "large integer", in: 1e20, opts: d0, want: "100,000,000,000,000,000,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(Valid(tt.in), tt.opts))
		})
	}
	assert.NotContains(t, FormatNumber(Valid(-1e-9), d0), "-")

	wide := DefaultFormatOptions()
	wide.MaximumFractionDigits = MaxFractionDigits
	assert.NotEqual(t, Placeholder, FormatNumber(Valid(1e300), wide), "scaling overflow must not lose the value")
}

func TestFormatChangeSignFollowsDisplay(t *testing.T) {
	d0 := DefaultFormatOptions()
	d0.MaximumFractionDigits = 0

	assert.Equal(t, "-1%", FormatChange(ChangeBetween(200, 199), d0))
	assert.Equal(t, "+1%", FormatChange(ChangeBetween(200, 201), d0))
	assert.Equal(t, "0%", FormatChange(ChangeBetween(1e9, 1e9+1), DefaultFormatOptions()))
	assert.Equal(t, "0%", FormatChange(ChangeBetween(1e9, 1e9-1), DefaultFormatOptions()))

	r := ChangeBetween(1e9, 1e9+1).Rounded(DefaultFormatOptions())
	assert.Equal(t, NoChange, r.Direction)
	r = ChangeBetween(0, 1).Rounded(d0)
	assert.Equal(t, NoChange, r.Direction)
	assert.False(t, r.Percent.IsValid())
}

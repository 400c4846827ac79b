package radial

import (
	"strconv"
	"strings"
)

// Formatter converts the slider's value into its textual readout.
type Formatter interface {
	Format(v float64) string
}

// FormatterFunc is a function adapter for Formatter.
type FormatterFunc func(v float64) string

// Format implements the Formatter interface.
func (f FormatterFunc) Format(v float64) string {
	return f(v)
}

// Default formatters. DecimalFormatter prints up to three decimals,
// DegreeFormatter two decimals with a degree suffix, RadianFormatter four
// decimals with a radian suffix. Trailing zeros are trimmed.
var (
	DecimalFormatter Formatter = FormatterFunc(func(v float64) string {
		return trimmed(v, 3)
	})

	DegreeFormatter Formatter = FormatterFunc(func(v float64) string {
		return trimmed(v, 2) + "°"
	})

	RadianFormatter Formatter = FormatterFunc(func(v float64) string {
		return trimmed(v, 4) + "rad"
	})
)

// trimmed formats v with at most prec decimals, dropping trailing zeros
// and a dangling decimal point.
func trimmed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}

// Package format turns numbers, dates and labels into display strings for
// chart axes, tooltips and legends.
//
// Non-finite numbers never fail; they render as NotAvailable.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// NotAvailable is shown in place of NaN and infinities.
	NotAvailable = "N/A"

	DefaultLocale    = "en-US"
	DefaultPrecision = 1
)

type unit struct {
	threshold float64
	suffix    string
}

// Largest first.
var abbreviations = []unit{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func fixed(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', max(precision, 0), 64)
}

// FormatNumberAbbreviated renders value with a K/M/B/T suffix and precision
// decimals, e.g. -1500 -> "-1.5K". Values below 1000 keep no suffix.
func FormatNumberAbbreviated(value float64, precision int) string {
	if !finite(value) {
		return NotAvailable
	}
	if value == 0 {
		return "0"
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}
	abs := math.Abs(value)
	for _, u := range abbreviations {
		if abs >= u.threshold {
			return sign + fixed(abs/u.threshold, precision) + u.suffix
		}
	}
	return sign + fixed(abs, precision)
}

// FormatPercentage renders value as a percentage. With asDecimal the value is
// a ratio (0.25 -> "25%"), otherwise it already is a percentage.
func FormatPercentage(value float64, precision int, asDecimal bool) string {
	if !finite(value) {
		return NotAvailable
	}
	if asDecimal {
		value *= 100
	}
	return fixed(value, precision) + "%"
}

func printer(locale string) *message.Printer {
	return message.NewPrinter(language.Make(locale))
}

// FormatNumber renders value with the locale's grouping and decimal
// separators and at most maxDecimals fraction digits.
func FormatNumber(value float64, locale string, maxDecimals int) string {
	if !finite(value) {
		return NotAvailable
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return printer(locale).Sprint(number.Decimal(value, number.MaxFractionDigits(max(maxDecimals, 0))))
}

// SmartOptions controls FormatSmartNumber. The zero value abbreviates,
// formats for en-US and prints no fraction digits.
type SmartOptions struct {
	// Locale is a BCP 47 tag. Empty means "en-US".
	Locale string
	// Decimals is the maximum number of fraction digits. Negative means
	// DefaultPrecision.
	Decimals int
	// NoAbbreviate disables K/M/B/T output for very large and very small
	// magnitudes.
	NoAbbreviate bool
}

// DefaultSmartOptions returns en-US with DefaultPrecision decimals and
// abbreviation on.
func DefaultSmartOptions() SmartOptions {
	return SmartOptions{
		Locale:   DefaultLocale,
		Decimals: DefaultPrecision,
	}
}

// FormatSmartNumber picks the most readable representation of value:
// abbreviated for |value| >= 1000 or < 0.01 (when enabled), locale formatted
// otherwise.
func FormatSmartNumber(value float64, opts SmartOptions) string {
	if !finite(value) {
		return NotAvailable
	}
	if value == 0 {
		return "0"
	}
	if opts.Decimals < 0 {
		opts.Decimals = DefaultPrecision
	}
	abs := math.Abs(value)
	if !opts.NoAbbreviate && (abs >= 1000 || abs < 0.01) {
		return FormatNumberAbbreviated(value, opts.Decimals)
	}
	return FormatNumber(value, opts.Locale, opts.Decimals)
}

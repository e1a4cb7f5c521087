package format

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/number"
)

const DefaultCurrency = "USD"

var ErrUnknownCurrency = errors.New("unknown currency code")

// CurrencyOptions selects how FormatCurrency renders an amount.
type CurrencyOptions struct {
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// Languages that write the symbol after the amount.
var suffixSymbolLanguages = map[string]bool{
	"cs": true,
	"da": true,
	"de": true,
	"es": true,
	"fi": true,
	"fr": true,
	"it": true,
	"pl": true,
	"ru": true,
	"sv": true,
}

// FormatCurrency renders amount in the currency's standard number of
// fraction digits, with the locale's separators and currency symbol.
func FormatCurrency(amount float64, opts CurrencyOptions) (string, error) {
	if !finite(amount) {
		return NotAvailable, nil
	}
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}

	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, opts.Currency)
	}
	scale, _ := currency.Standard.Rounding(unit)

	tag := language.Make(opts.Locale)
	p := printer(opts.Locale)
	digits := p.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale)))
	symbol := p.Sprint(currency.Symbol(unit))

	sign := ""
	if amount < 0 && strings.ContainsAny(digits, "123456789") {
		sign = "-"
	}

	base, _ := tag.Base()
	if suffixSymbolLanguages[base.String()] {
		return sign + digits + " " + symbol, nil
	}
	return sign + symbol + digits, nil
}

// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseRational parses a GnuCash rational amount such as "-12345/100" into a decimal value.
// Both parts must be integers and the denominator must not be zero.
func ParseRational(value string) (decimal.Decimal, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(value), "/")
	if !ok {
		return decimal.Zero, fmt.Errorf("amount %q is not of the form numerator/denominator", value)
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numerator in amount %q: %w", value, err)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid denominator in amount %q: %w", value, err)
	}
	if d == 0 {
		return decimal.Zero, fmt.Errorf("zero denominator in amount %q", value)
	}

	return decimal.NewFromInt(n).Div(decimal.NewFromInt(d)), nil
}

// FormatFixed formats an amount with two decimal places and no thousands separators.
func FormatFixed(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// LookupCurrency returns the ISO 4217 currency for code, or nil when the code is unknown.
func LookupCurrency(code string) *money.Currency {
	if code == "" {
		return nil
	}
	return money.GetCurrency(strings.ToUpper(code))
}

// Symbol returns the display symbol of a currency code, falling back to the code itself.
func Symbol(code string) string {
	if c := LookupCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}

// FormatAmount formats a decimal amount with the symbol of the specified currency.
// The amount is formatted with two decimal places without inserting thousands separators.
// Returns strings like "$1234.56" or "1234.56" when no currency is given.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := FormatFixed(amount)
	if currency == "" {
		return formattedAmount
	}
	return Symbol(currency) + formattedAmount
}

package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyRule recognizes one currency, either by ISO code or by symbol.
// Rules run in order; the first whose pattern appears anywhere in the text
// wins. Symbols rank below explicit codes so "EUR ... $" resolves to EUR.
type currencyRule struct {
	code string
	re   *regexp.Regexp
}

var currencyRules = []currencyRule{
	{"USD", regexp.MustCompile(`\bUSD\b`)},
	{"EUR", regexp.MustCompile(`\bEUR\b`)},
	{"GBP", regexp.MustCompile(`\bGBP\b`)},
	{"CAD", regexp.MustCompile(`\bCAD\b`)},
	{"AUD", regexp.MustCompile(`\bAUD\b`)},
	{"INR", regexp.MustCompile(`\bINR\b`)},
	{"JPY", regexp.MustCompile(`\bJPY\b`)},
	{"USD", regexp.MustCompile(`\$`)},
	{"EUR", regexp.MustCompile(`€`)},
	{"GBP", regexp.MustCompile(`£`)},
	{"INR", regexp.MustCompile(`₹`)},
	{"JPY", regexp.MustCompile(`¥`)},
}

// detectCurrency returns the ISO code for the first recognized currency
// marker, or "" when nothing in the fixed set appears.
func detectCurrency(text string) (string, bool) {
	for _, r := range currencyRules {
		if r.re.MatchString(text) {
			return r.code, true
		}
	}
	return "", false
}

var amountCleaner = strings.NewReplacer("$", "", "£", "", "€", "", "₹", "", "¥", "", ",", "", " ", "")

// parseAmount coerces a matched money string into a decimal, stripping
// currency symbols and thousands separators. Failure means the value is
// treated as absent, not as an error.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"1,250.00", "1250.00", true},
		{"$1,250.00", "1250.00", true},
		{"€ 99.5", "99.50", true},
		{"1250", "1250.00", true},
		{"12,34,567.89", "1234567.89", true},
		{"", "", false},
		{"N/A", "", false},
		{"12.34.56", "", false},
	}
	for _, tt := range tests {
		d, ok := parseAmount(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, d.StringFixed(2), "raw %q", tt.raw)
		}
	}
}

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Total Due: $1,250.00", "USD", true},
		{"Amount: £42.00", "GBP", true},
		{"Amount: €42.00", "EUR", true},
		{"42.00 INR", "INR", true},
		{"Betrag: 42,00", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := detectCurrency(tt.text)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

// Explicit ISO codes outrank bare symbols regardless of position.
func TestDetectCurrencyCodeBeatsSymbol(t *testing.T) {
	got, ok := detectCurrency("$ handling fee, invoice total in EUR")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got)
}

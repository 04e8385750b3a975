package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

func fullInvoice() entity.ExtractedInvoice {
	return entity.ExtractedInvoice{
		VendorName:    entity.StringPtr("Acme Supplies Limited"),
		InvoiceNumber: entity.StringPtr("INV-2024-0042"),
		InvoiceDate:   entity.StringPtr("2024-01-15"),
		Currency:      entity.StringPtr("USD"),
		GrandTotal:    entity.DecimalPtr(decimal.NewFromInt(1250)),
	}
}

func TestValidateCompleteInvoice(t *testing.T) {
	res := New(0.5).Validate(fullInvoice())

	assert.Equal(t, 1.0, res.CompletenessScore)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.MissingFields)
}

func TestValidateMissingInvoiceNumber(t *testing.T) {
	inv := fullInvoice()
	inv.InvoiceNumber = nil

	res := New(0.5).Validate(inv)
	assert.Equal(t, 0.75, res.CompletenessScore)
	assert.True(t, res.IsValid)
	assert.Equal(t, []string{"invoice_number"}, res.MissingFields)
}

// Grand total is non-negotiable: without it the record is never valid, no
// matter how high the score.
func TestValidateGrandTotalGate(t *testing.T) {
	inv := fullInvoice()
	inv.GrandTotal = nil

	res := New(0.5).Validate(inv)
	assert.Equal(t, 0.75, res.CompletenessScore)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"grand_total"}, res.MissingFields)
}

func TestValidateEmptyInvoice(t *testing.T) {
	res := New(0.5).Validate(entity.ExtractedInvoice{})

	assert.Equal(t, 0.0, res.CompletenessScore)
	assert.False(t, res.IsValid)
	assert.Equal(t,
		[]string{"vendor_name", "invoice_number", "invoice_date", "grand_total"},
		res.MissingFields)
}

// A configured threshold of zero is honored, not replaced with the default:
// any record carrying a grand total passes.
func TestValidateZeroThreshold(t *testing.T) {
	v := New(0)

	res := v.Validate(entity.ExtractedInvoice{GrandTotal: entity.DecimalPtr(decimal.NewFromInt(10))})
	assert.Equal(t, 0.25, res.CompletenessScore)
	assert.True(t, res.IsValid)

	res = v.Validate(entity.ExtractedInvoice{})
	assert.False(t, res.IsValid, "grand total gate still applies at threshold zero")
}

func TestValidateNegativeThresholdFallsBackToDefault(t *testing.T) {
	inv := fullInvoice()
	inv.VendorName = nil
	inv.InvoiceNumber = nil
	inv.InvoiceDate = nil

	// score 0.25 with a grand total present: fails the 0.5 default
	res := New(-1).Validate(inv)
	assert.False(t, res.IsValid)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	for _, inv := range []entity.ExtractedInvoice{
		{}, fullInvoice(),
		{GrandTotal: entity.DecimalPtr(decimal.Zero)},
	} {
		res := New(0.5).Validate(inv)
		assert.GreaterOrEqual(t, res.CompletenessScore, 0.0)
		assert.LessOrEqual(t, res.CompletenessScore, 1.0)
		if res.IsValid {
			assert.NotNil(t, inv.GrandTotal)
		}
	}
}

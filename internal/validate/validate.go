package validate

import (
	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// Validator scores how complete an extracted invoice is. The check is
// advisory: invalid records are still exported, merely flagged.
type Validator struct {
	minScore float64
}

// New builds a Validator with the given score threshold. Zero is a legal
// threshold (every record with a grand total passes); only negative values
// fall back to the default.
func New(minScore float64) *Validator {
	if minScore < 0 {
		minScore = 0.5
	}
	return &Validator{minScore: minScore}
}

// Validate computes completeness over the required fields. A record is valid
// when the score clears the threshold AND a grand total was extracted; a
// record without a total is never usable.
func (v *Validator) Validate(inv entity.ExtractedInvoice) entity.ValidationResult {
	present := map[string]bool{
		constants.FieldVendorName:    inv.VendorName != nil,
		constants.FieldInvoiceNumber: inv.InvoiceNumber != nil,
		constants.FieldInvoiceDate:   inv.InvoiceDate != nil,
		constants.FieldGrandTotal:    inv.GrandTotal != nil,
	}

	populated := 0
	missing := make([]string, 0)
	for _, field := range constants.RequiredFields {
		if present[field] {
			populated++
		} else {
			missing = append(missing, field)
		}
	}

	score := float64(populated) / float64(len(constants.RequiredFields))
	return entity.ValidationResult{
		CompletenessScore: score,
		IsValid:           score >= v.minScore && inv.GrandTotal != nil,
		MissingFields:     missing,
	}
}

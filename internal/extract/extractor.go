package extract

import (
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// FieldExtractor recovers structured invoice fields from raw OCR text with
// ordered regex alternatives. Per field the first match wins; fields with no
// match stay unset and are never fabricated.
type FieldExtractor struct {
	logger *slog.Logger
	titler cases.Caser
}

func NewFieldExtractor(logger *slog.Logger) *FieldExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldExtractor{logger: logger, titler: cases.Title(language.English)}
}

// Extract parses all fields out of text. Empty text yields an empty record.
func (f *FieldExtractor) Extract(text string) entity.ExtractedInvoice {
	var inv entity.ExtractedInvoice
	if text == "" {
		return inv
	}

	if v, ok := firstMatch(text, vendorPatterns); ok {
		inv.VendorName = entity.StringPtr(f.titler.String(v))
	}
	if v, ok := firstMatch(text, invoiceNumberPatterns); ok {
		inv.InvoiceNumber = entity.StringPtr(v)
	}
	if v, ok := extractDate(text); ok {
		inv.InvoiceDate = entity.StringPtr(v)
	}
	if v, ok := detectCurrency(text); ok {
		inv.Currency = entity.StringPtr(v)
	}
	if raw, ok := firstMatch(text, grandTotalPatterns); ok {
		if d, ok := parseAmount(raw); ok {
			inv.GrandTotal = entity.DecimalPtr(d)
		} else {
			f.logger.Debug("grand total matched but failed numeric coercion", "raw", raw)
		}
	}
	inv.LineItems = extractLineItems(text)

	return inv
}

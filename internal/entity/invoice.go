package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary values serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ExtractedInvoice is the parsed record for one document. Pointer fields stay
// nil when the extractor found nothing; absent values are never fabricated.
type ExtractedInvoice struct {
	VendorName    *string          `json:"vendor_name"`
	InvoiceNumber *string          `json:"invoice_number"`
	InvoiceDate   *string          `json:"invoice_date"` // normalized YYYY-MM-DD when recognizable
	Currency      *string          `json:"currency"`     // ISO 4217 code
	GrandTotal    *decimal.Decimal `json:"grand_total"`
	LineItems     []LineItem       `json:"line_items"`
}

// LineItem is one recovered row of the invoice's item table. A row is only
// captured when every column matched on a single line.
type LineItem struct {
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Amount      *decimal.Decimal `json:"amount"`
}

// ValidationResult is the advisory completeness verdict for one invoice.
type ValidationResult struct {
	CompletenessScore float64  `json:"completeness_score"`
	IsValid           bool     `json:"is_valid"`
	MissingFields     []string `json:"missing_fields"`
}

// InvoiceRecord is the unit persisted to output. InvoiceID is 1-based and
// assigned in processing order; it is the foreign key joining the header and
// line-item tables. Records are write-once: nothing mutates them after the
// exporter reads them.
type InvoiceRecord struct {
	InvoiceID  int              `json:"invoice_id"`
	FileName   string           `json:"file_name"`
	SourcePath string           `json:"source_path"`
	Format     string           `json:"format"`
	Invoice    ExtractedInvoice `json:"invoice"`
	Validation ValidationResult `json:"validation"`
	RawOCRText string           `json:"raw_ocr_text"`
	Confidence float32          `json:"ocr_confidence,omitempty"`
}

// RunMetadata is the run-level block of the JSON audit document.
type RunMetadata struct {
	RunID               string    `json:"run_id"`
	TotalInvoices       int       `json:"total_invoices"`
	ProcessingTimestamp time.Time `json:"processing_timestamp"`
	ToolVersion         string    `json:"tool_version"`
}

// StringPtr returns a pointer to s, for populating optional fields.
func StringPtr(s string) *string { return &s }

// DecimalPtr returns a pointer to d.
func DecimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// auditDocument is the full JSON export: run metadata plus every record with
// its raw OCR text retained for audit.
type auditDocument struct {
	Metadata entity.RunMetadata `json:"metadata"`
	Invoices []auditInvoice     `json:"invoices"`
}

// auditInvoice flattens InvoiceRecord into the documented wire shape.
type auditInvoice struct {
	InvoiceID     int                     `json:"invoice_id"`
	FileName      string                  `json:"file_name"`
	VendorName    *string                 `json:"vendor_name"`
	InvoiceNumber *string                 `json:"invoice_number"`
	InvoiceDate   *string                 `json:"invoice_date"`
	Currency      *string                 `json:"currency"`
	GrandTotal    *decimal.Decimal        `json:"grand_total"`
	LineItems     []entity.LineItem       `json:"line_items"`
	Validation    entity.ValidationResult `json:"validation"`
	RawOCRText    string                  `json:"raw_ocr_text"`
}

// BuildAuditDocument assembles and marshals the audit JSON for all records.
func BuildAuditDocument(records []entity.InvoiceRecord, runID uuid.UUID, now time.Time) ([]byte, error) {
	doc := auditDocument{
		Metadata: entity.RunMetadata{
			RunID:               runID.String(),
			TotalInvoices:       len(records),
			ProcessingTimestamp: now.UTC(),
			ToolVersion:         common.ToolVersion,
		},
		Invoices: make([]auditInvoice, 0, len(records)),
	}
	for _, rec := range records {
		items := rec.Invoice.LineItems
		if items == nil {
			items = []entity.LineItem{}
		}
		doc.Invoices = append(doc.Invoices, auditInvoice{
			InvoiceID:     rec.InvoiceID,
			FileName:      rec.FileName,
			VendorName:    rec.Invoice.VendorName,
			InvoiceNumber: rec.Invoice.InvoiceNumber,
			InvoiceDate:   rec.Invoice.InvoiceDate,
			Currency:      rec.Invoice.Currency,
			GrandTotal:    rec.Invoice.GrandTotal,
			LineItems:     items,
			Validation:    rec.Validation,
			RawOCRText:    rec.RawOCRText,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteJSON validates the audit document against the embedded schema and
// writes it to path.
func (s *Service) WriteJSON(records []entity.InvoiceRecord, runID uuid.UUID, now time.Time, path string) error {
	b, err := BuildAuditDocument(records, runID, now)
	if err != nil {
		return fmt.Errorf("%w: marshal audit document: %v", common.ErrExport, err)
	}
	if err := ValidateJSONAgainstSchema(BuildAuditJSONSchema(), b); err != nil {
		return fmt.Errorf("%w: audit document schema: %v", common.ErrExport, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrExport, path, err)
	}
	s.logger.Info("audit json written", "path", path, "invoices", len(records), "bytes", len(b))
	return nil
}

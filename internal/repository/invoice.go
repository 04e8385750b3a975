package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// InvoiceRepository persists finished runs into the audit database.
type InvoiceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewInvoiceRepository(db *sql.DB, logger *slog.Logger) *InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceRepository{db: db, logger: logger}
}

// SaveRun writes the run row plus every invoice and line item in a single
// transaction, so a half-written run never appears in the audit store.
func (r *InvoiceRepository) SaveRun(ctx context.Context, runID uuid.UUID, startedAt time.Time, records []entity.InvoiceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin audit tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, tool_version, total_invoices) VALUES (?, ?, ?, ?)`,
		runID.String(), startedAt.UTC().Format(time.RFC3339), common.ToolVersion, len(records),
	); err != nil {
		return common.WrapError(err, "insert run")
	}

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO invoices (run_id, invoice_id, file_name, source_file, vendor_name,
				invoice_number, invoice_date, currency, grand_total,
				completeness_score, is_valid, missing_fields, raw_ocr_text)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID.String(), rec.InvoiceID, rec.FileName, rec.SourcePath,
			nullStr(rec.Invoice.VendorName), nullStr(rec.Invoice.InvoiceNumber),
			nullStr(rec.Invoice.InvoiceDate), nullStr(rec.Invoice.Currency),
			nullDec(rec.Invoice.GrandTotal),
			rec.Validation.CompletenessScore, boolInt(rec.Validation.IsValid),
			strings.Join(rec.Validation.MissingFields, ","), rec.RawOCRText,
		); err != nil {
			return fmt.Errorf("insert invoice %d: %w", rec.InvoiceID, err)
		}

		for i, item := range rec.Invoice.LineItems {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO line_items (run_id, invoice_id, line_number, description, quantity, unit_price, amount)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				runID.String(), rec.InvoiceID, i+1,
				nullStr(item.Description), nullDec(item.Quantity),
				nullDec(item.UnitPrice), nullDec(item.Amount),
			); err != nil {
				return fmt.Errorf("insert line item %d/%d: %w", rec.InvoiceID, i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit audit tx")
	}
	r.logger.Info("audit run saved", "run_id", runID, "invoices", len(records))
	return nil
}

func nullStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullDec(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return p.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

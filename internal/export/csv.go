package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// Service serializes a finished run. Output write failures are fatal to the
// run; partially written files are not cleaned up.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// HeaderColumns is the fixed column order of the header table.
var HeaderColumns = []string{
	"invoice_id", "file_name", "vendor_name", "invoice_number", "invoice_date",
	"currency", "grand_total", "line_items_count", "source_file",
}

// LineColumns is the fixed column order of the line-item table.
var LineColumns = []string{
	"invoice_id", "line_number", "description", "quantity", "unit_price", "amount",
}

// CSVPaths derives the two table paths from the --out_csv base path.
func CSVPaths(base string) (header, lines string) {
	stem := strings.TrimSuffix(base, ".csv")
	return stem + "_header.csv", stem + "_lines.csv"
}

// WriteCSV writes the header and line-item tables for all records, linked by
// invoice_id.
func (s *Service) WriteCSV(records []entity.InvoiceRecord, basePath string) error {
	headerPath, linesPath := CSVPaths(basePath)

	headerRows := [][]string{HeaderColumns}
	lineRows := [][]string{LineColumns}
	for _, rec := range records {
		headerRows = append(headerRows, []string{
			strconv.Itoa(rec.InvoiceID),
			rec.FileName,
			strDeref(rec.Invoice.VendorName),
			strDeref(rec.Invoice.InvoiceNumber),
			strDeref(rec.Invoice.InvoiceDate),
			strDeref(rec.Invoice.Currency),
			moneyDeref(rec.Invoice.GrandTotal),
			strconv.Itoa(len(rec.Invoice.LineItems)),
			rec.SourcePath,
		})
		for i, item := range rec.Invoice.LineItems {
			lineRows = append(lineRows, []string{
				strconv.Itoa(rec.InvoiceID),
				strconv.Itoa(i + 1),
				strDeref(item.Description),
				qtyDeref(item.Quantity),
				moneyDeref(item.UnitPrice),
				moneyDeref(item.Amount),
			})
		}
	}

	if err := writeCSVFile(headerPath, headerRows); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrExport, headerPath, err)
	}
	s.logger.Info("header table written", "path", headerPath, "rows", len(headerRows)-1)

	if err := writeCSVFile(linesPath, lineRows); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrExport, linesPath, err)
	}
	s.logger.Info("line-item table written", "path", linesPath, "rows", len(lineRows)-1)
	return nil
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyDeref(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}
	return p.StringFixed(2)
}

func qtyDeref(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}
	return p.String()
}

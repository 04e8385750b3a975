package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// WriteXLSX renders the run as a two-sheet workbook mirroring the CSV tables,
// for people who want to eyeball the batch in a spreadsheet.
func (s *Service) WriteXLSX(records []entity.InvoiceRecord, path string) error {
	b, err := buildWorkbook(records)
	if err != nil {
		return fmt.Errorf("%w: build workbook: %v", common.ErrExport, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrExport, path, err)
	}
	s.logger.Info("xlsx written", "path", path, "invoices", len(records))
	return nil
}

func buildWorkbook(records []entity.InvoiceRecord) ([]byte, error) {
	f := excelize.NewFile()

	const invSheet = "Invoices"
	if err := f.SetSheetName("Sheet1", invSheet); err != nil {
		return nil, err
	}
	const itemSheet = "Line Items"
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range HeaderColumns {
		write(invSheet, i+1, 1, h)
	}
	for r, rec := range records {
		row := r + 2
		write(invSheet, 1, row, rec.InvoiceID)
		write(invSheet, 2, row, rec.FileName)
		write(invSheet, 3, row, strDeref(rec.Invoice.VendorName))
		write(invSheet, 4, row, strDeref(rec.Invoice.InvoiceNumber))
		write(invSheet, 5, row, strDeref(rec.Invoice.InvoiceDate))
		write(invSheet, 6, row, strDeref(rec.Invoice.Currency))
		write(invSheet, 7, row, moneyDeref(rec.Invoice.GrandTotal))
		write(invSheet, 8, row, len(rec.Invoice.LineItems))
		write(invSheet, 9, row, rec.SourcePath)
	}

	for i, h := range LineColumns {
		write(itemSheet, i+1, 1, h)
	}
	row := 2
	for _, rec := range records {
		for i, item := range rec.Invoice.LineItems {
			write(itemSheet, 1, row, rec.InvoiceID)
			write(itemSheet, 2, row, i+1)
			write(itemSheet, 3, row, strDeref(item.Description))
			write(itemSheet, 4, row, qtyDeref(item.Quantity))
			write(itemSheet, 5, row, moneyDeref(item.UnitPrice))
			write(itemSheet, 6, row, moneyDeref(item.Amount))
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

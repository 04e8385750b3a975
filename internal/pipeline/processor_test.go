package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/extract"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/ocr"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/validate"
)

// fakeExtractor maps paths to canned OCR outcomes.
type fakeExtractor struct {
	text map[string]string
	errs map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (ocr.ExtractionResult, error) {
	if err, ok := f.errs[path]; ok {
		return ocr.ExtractionResult{SourceType: constants.IMAGE}, err
	}
	return ocr.ExtractionResult{
		Text:       f.text[path],
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "text-passthrough",
		Confidence: 1.0,
	}, nil
}

func newTestProcessor(f *fakeExtractor) *Processor {
	return NewProcessor(nil, f, extract.NewFieldExtractor(nil), validate.New(0.5))
}

func TestProcessFileSuccess(t *testing.T) {
	f := &fakeExtractor{text: map[string]string{
		"a.txt": "ACME LIMITED\nInvoice #: INV-100\nDate: 01/15/2024\nTotal Due: $1,250.00\n",
	}}
	rec, status := newTestProcessor(f).ProcessFile(context.Background(), "a.txt")

	assert.Equal(t, constants.FileStatusSuccess, status)
	require.NotNil(t, rec)
	assert.Equal(t, "a.txt", rec.FileName)
	assert.Equal(t, "1250.00", rec.Invoice.GrandTotal.StringFixed(2))
	assert.True(t, rec.Validation.IsValid)
	assert.Contains(t, rec.RawOCRText, "Total Due")
}

func TestProcessFileEngineFailureEmitsDegradedRecord(t *testing.T) {
	f := &fakeExtractor{errs: map[string]error{
		"b.png": fmt.Errorf("%w: tesseract: exit 1", common.ErrOCREngine),
	}}
	rec, status := newTestProcessor(f).ProcessFile(context.Background(), "b.png")

	assert.Equal(t, constants.FileStatusPartial, status)
	require.NotNil(t, rec)
	assert.Empty(t, rec.RawOCRText)
	assert.Nil(t, rec.Invoice.GrandTotal)
	assert.False(t, rec.Validation.IsValid)
	assert.Equal(t, 0.0, rec.Validation.CompletenessScore)
}

func TestProcessFileUnreadableImageIsSkipped(t *testing.T) {
	f := &fakeExtractor{errs: map[string]error{
		"c.png": fmt.Errorf("%w: decode failed", common.ErrUnreadableImage),
	}}
	rec, status := newTestProcessor(f).ProcessFile(context.Background(), "c.png")

	assert.Equal(t, constants.FileStatusSkipped, status)
	assert.Nil(t, rec, "skipped files leave no record")
}

func TestProcessFileMissingInvoiceNumberStillEmitsRecord(t *testing.T) {
	f := &fakeExtractor{text: map[string]string{
		"d.txt": "ACME LIMITED\nDate: 01/15/2024\nTotal Due: $99.00\n",
	}}
	rec, status := newTestProcessor(f).ProcessFile(context.Background(), "d.txt")

	assert.Equal(t, constants.FileStatusSuccess, status)
	require.NotNil(t, rec)
	assert.Nil(t, rec.Invoice.InvoiceNumber)
	assert.Contains(t, rec.Validation.MissingFields, "invoice_number")
}

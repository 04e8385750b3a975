package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/extract"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/ocr"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/validate"
)

// TextExtractor is the narrow OCR surface the pipeline depends on, so tests
// can swap the engine out without touching extraction logic.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Processor runs one file through ocr -> field extraction -> validation.
// It is the per-file error boundary: nothing a single bad file does may
// abort the batch.
type Processor struct {
	Logger    *slog.Logger
	OCR       TextExtractor
	Fields    *extract.FieldExtractor
	Validator *validate.Validator
}

func NewProcessor(logger *slog.Logger, tx TextExtractor, fields *extract.FieldExtractor, v *validate.Validator) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: tx, Fields: fields, Validator: v}
}

// ProcessFile fully processes a single file and returns its record.
// A nil record with status SKIPPED means the file was unreadable and left no
// trace in the outputs; an OCR engine failure still yields a record, with
// empty raw text and a correspondingly low completeness score.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*entity.InvoiceRecord, constants.FileStatus) {
	res, err := p.OCR.Extract(ctx, path)
	status := constants.FileStatusSuccess
	switch {
	case err == nil:
	case errors.Is(err, common.ErrOCREngine):
		p.Logger.Warn("ocr engine failed, emitting degraded record", "path", path, "error", err)
		res.Text = ""
		status = constants.FileStatusPartial
	default:
		// unreadable image, unrenderable pdf, unsupported content
		p.Logger.Warn("file skipped", "path", path, "error", err)
		return nil, constants.FileStatusSkipped
	}

	if res.SourceType == constants.IMAGE && status == constants.FileStatusSuccess &&
		res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("low ocr confidence", "path", path, "confidence", res.Confidence)
	}

	inv := p.Fields.Extract(res.Text)
	val := p.Validator.Validate(inv)

	rec := &entity.InvoiceRecord{
		FileName:   filepath.Base(path),
		SourcePath: path,
		Format:     res.SourceType,
		Invoice:    inv,
		Validation: val,
		RawOCRText: res.Text,
		Confidence: res.Confidence,
	}

	p.Logger.Info("file processed",
		"path", path,
		"status", string(status),
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"completeness", val.CompletenessScore,
		"valid", val.IsValid,
		"line_items", len(inv.LineItems),
	)
	return rec, status
}

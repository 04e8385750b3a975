package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

// ExtractionResult is the text recovered from one document.
type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE | constants.TXT
	Method     string // "text-passthrough" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// Extractor turns an invoice file into a raw text blob. PDFs are rasterized
// page by page with pdftoppm, images are enhanced and fed to tesseract, and
// .txt files bypass OCR entirely.
type Extractor struct {
	cfg     common.OCRConfig
	enhance common.EnhanceConfig
	runner  Runner
	logger  *slog.Logger
}

func NewExtractor(cfg common.OCRConfig, enhance common.EnhanceConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if enhance.ThresholdBlock == 0 {
		enhance.ThresholdBlock = 11
	}
	return &Extractor{cfg: cfg, enhance: enhance, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the external command runner; tests use this to stub
// tesseract and pdftoppm.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.TXT:
		res, err := e.extractText(path)
		res.Duration = time.Since(start)
		return res, err
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

// extractText reads a .txt file as-is. The content is kept byte-exact so the
// audit trail matches the source file.
func (e *Extractor) extractText(path string) (ExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.TXT},
			fmt.Errorf("%w: read %s: %v", common.ErrUnreadableImage, path, err)
	}
	return ExtractionResult{
		Text:       string(b),
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "text-passthrough",
		Confidence: 1.0,
	}, nil
}

package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

// extractPDF rasterizes every page at the configured DPI and OCRs each one.
// A page that fails to render or recognize is skipped with a warning; the
// rest of the document still goes through.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	tmpDir, err := os.MkdirTemp("", "s2c-pdf-*")
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF}, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: []string{string(errb)}},
			fmt.Errorf("%w: rasterize %s: %v", common.ErrUnreadableImage, path, err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return ExtractionResult{SourceType: constants.PDF, Warnings: []string{"pdftoppm produced no images"}},
			fmt.Errorf("%w: no pages rendered from %s", common.ErrUnreadableImage, path)
	}

	var b strings.Builder
	var warns []string
	engineDown := true
	for _, page := range matches {
		txt, w, err := e.ocrPage(ctx, page)
		warns = append(warns, w...)
		if err != nil {
			e.logger.Warn("page skipped", "pdf", path, "page", filepath.Base(page), "error", err)
			warns = append(warns, err.Error())
			continue
		}
		engineDown = false
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}
	if engineDown {
		return ExtractionResult{SourceType: constants.PDF, Pages: len(matches), Warnings: warns},
			fmt.Errorf("%w: all %d pages failed", common.ErrOCREngine, len(matches))
	}

	txt := Normalize(b.String())
	return ExtractionResult{
		Text:       txt,
		Pages:      len(matches),
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
		Confidence: heuristicConfidence(txt),
	}, nil
}

// ocrPage enhances one rendered page and runs tesseract over it.
func (e *Extractor) ocrPage(ctx context.Context, pagePath string) (string, []string, error) {
	src, err := imaging.Open(pagePath)
	if err != nil {
		return "", nil, fmt.Errorf("decode page: %w", err)
	}
	enhanced, err := Enhance(src, e.enhance)
	if err != nil {
		return "", nil, err
	}
	enhancedPath := strings.TrimSuffix(pagePath, ".png") + "-enh.png"
	if err := imaging.Save(enhanced, enhancedPath); err != nil {
		return "", nil, fmt.Errorf("save enhanced page: %w", err)
	}
	return e.tesseractOCR(ctx, enhancedPath)
}

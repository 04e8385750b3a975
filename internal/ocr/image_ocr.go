package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

const ImageConfidenceThreshold = 0.6

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE},
			fmt.Errorf("%w: decode %s: %v", common.ErrUnreadableImage, path, err)
	}

	enhanced, err := Enhance(src, e.enhance)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	// tesseract reads from disk, so the enhanced bitmap goes through a temp png
	tmpDir, err := os.MkdirTemp("", "s2c-img-*")
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	enhancedPath := filepath.Join(tmpDir, "enhanced.png")
	if err := imaging.Save(enhanced, enhancedPath); err != nil {
		return ExtractionResult{SourceType: constants.IMAGE},
			fmt.Errorf("%w: save enhanced bitmap: %v", common.ErrUnreadableImage, err)
	}

	txt, warn, err := e.tesseractOCR(ctx, enhancedPath)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warn}, err
	}
	txt = Normalize(txt)

	var ocrConf float32
	if e.cfg.EnableTSVConfidence {
		if c, w, err2 := e.tesseractTSVConfidence(ctx, enhancedPath); err2 == nil {
			ocrConf = c
			warn = append(warn, w...)
		} else {
			warn = append(warn, err2.Error())
		}
	}
	heurConf := heuristicConfidence(txt)

	// blend: weight engine-reported confidence higher when present
	conf := heurConf
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return ExtractionResult{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warn,
		Confidence: conf,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}

	// tesseract <file> stdout -l <lang> --psm 6 --oem 3
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("%w: tesseract: %v", common.ErrOCREngine, err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// conf is column 11 of the TSV; -1 marks non-word rows
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/export"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/extract"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/ingest"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/ocr"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/pipeline"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/repository"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/validate"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inDir         = flag.String("in_dir", "", "input directory containing invoice files (required)")
		outCSV        = flag.String("out_csv", "", "output CSV base path; derives <base>_header.csv and <base>_lines.csv (required)")
		outJSON       = flag.String("out_json", "", "output JSON audit file path (required)")
		tesseractPath = flag.String("tesseract_path", "", "override for locating the tesseract executable")
		outXLSX       = flag.String("out_xlsx", "", "optional XLSX workbook path")
		auditDB       = flag.String("audit_db", "", "optional SQLite audit database path")
		configPath    = flag.String("config", "", "optional YAML config file")
		logLevel      = flag.String("log_level", "", "log level: debug | info | warn | error")
	)
	flag.Parse()

	if *inDir == "" || *outCSV == "" || *outJSON == "" {
		printError("Error: --in_dir, --out_csv and --out_json are required\n")
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if *configPath != "" {
		if err := common.LoadConfigFile(cfg, *configPath); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *tesseractPath != "" {
		cfg.OCR.Tesseract = *tesseractPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	runID := uuid.New()
	startedAt := time.Now()

	files, stats, err := ingest.ScanDirectory(*inDir, logger)
	if err != nil {
		logger.Error("directory scan failed", "dir", *inDir, "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(cfg.OCR, cfg.Enhance, logger)
	fields := extract.NewFieldExtractor(logger)
	validator := validate.New(cfg.Validation.MinScore)
	processor := pipeline.NewProcessor(logger, extractor, fields, validator)

	// one file fully processed before the next begins; invoice IDs follow
	// processing order
	var records []entity.InvoiceRecord
	skipped := 0
	for _, path := range files {
		rec, status := processor.ProcessFile(ctx, path)
		if status == constants.FileStatusSkipped {
			skipped++
			continue
		}
		rec.InvoiceID = len(records) + 1
		records = append(records, *rec)
	}
	logger.Info("batch complete",
		"run_id", runID,
		"matched", stats.Matched,
		"processed", len(records),
		"skipped", skipped,
	)

	exporter := export.NewService(logger)
	if err := exporter.WriteCSV(records, *outCSV); err != nil {
		logger.Error("csv export failed", "error", err)
		os.Exit(1)
	}
	if err := exporter.WriteJSON(records, runID, startedAt, *outJSON); err != nil {
		logger.Error("json export failed", "error", err)
		os.Exit(1)
	}
	if *outXLSX != "" {
		if err := exporter.WriteXLSX(records, *outXLSX); err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
	}
	if *auditDB != "" {
		db, err := repository.Open(ctx, *auditDB)
		if err != nil {
			logger.Error("audit db open failed", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		repo := repository.NewInvoiceRepository(db, logger)
		if err := repo.SaveRun(ctx, runID, startedAt, records); err != nil {
			logger.Error("audit db save failed", "error", err)
			os.Exit(1)
		}
	}

	headerCSV, linesCSV := export.CSVPaths(*outCSV)
	fmt.Printf("Processing complete!\n")
	fmt.Printf("- Files matched: %d\n", stats.Matched)
	fmt.Printf("- Invoices processed: %d\n", len(records))
	fmt.Printf("- Files skipped: %d\n", skipped)
	fmt.Printf("- Output: %s, %s, %s\n", headerCSV, linesCSV, *outJSON)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

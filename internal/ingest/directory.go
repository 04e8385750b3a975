package ingest

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/constants"
	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/common"
)

// DirStats summarizes one directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// ScanDirectory resolves root into the ordered list of candidate invoice
// files, descending into subdirectories. Entries are filtered by the
// extension allow-list (case-insensitive) and sorted by full path so invoice
// ID assignment is reproducible across runs. Files with unrecognized
// extensions are skipped at debug level; hidden files and hidden directories
// are skipped outright.
func ScanDirectory(root string, logger *slog.Logger) ([]string, DirStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, fmt.Errorf("%w: empty path", common.ErrDirectoryNotFound)
	}
	st, err := os.Stat(root)
	if err != nil || !st.IsDir() {
		return nil, DirStats{}, fmt.Errorf("%w: %s", common.ErrDirectoryNotFound, root)
	}

	var files []string
	var stats DirStats
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		stats.Scanned++
		if isHidden(d.Name()) {
			stats.Skipped++
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(d.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			logger.Debug("skipping unsupported extension", "file", d.Name(), "ext", ext)
			stats.Skipped++
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("walk dir %s: %w", root, err)
	}

	// filesystem enumeration order is not guaranteed; sort for determinism
	sort.Strings(files)

	logger.Info("directory scan complete", "root", root,
		"scanned", stats.Scanned, "matched", stats.Matched, "skipped", stats.Skipped)
	return files, stats, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

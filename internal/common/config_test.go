package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
	assert.Equal(t, 6, cfg.OCR.PSM)
	assert.Equal(t, 11, cfg.Enhance.ThresholdBlock)
	assert.Equal(t, 0.5, cfg.Validation.MinScore)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan2csv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ocr:\n  dpi: 150\n  tesseract: /opt/tesseract\n"), 0o644))

	cfg := LoadConfig()
	require.NoError(t, LoadConfigFile(cfg, path))

	assert.Equal(t, 150, cfg.OCR.DPI)
	assert.Equal(t, "/opt/tesseract", cfg.OCR.Tesseract)
	// untouched keys keep their defaults
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := LoadConfig()
	assert.Error(t, LoadConfigFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Enhance.ThresholdBlock = 4
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Validation.MinScore = 1.5
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.OCR.DPI = 0
	assert.Error(t, cfg.Validate())
}

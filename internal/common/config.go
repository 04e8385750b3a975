package common

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ToolVersion is stamped into the JSON audit metadata.
const ToolVersion = "1.0.0"

// Config holds all application configuration
type Config struct {
	OCR        OCRConfig      `yaml:"ocr"`
	Enhance    EnhanceConfig  `yaml:"enhance"`
	Validation ValidateConfig `yaml:"validation"`
	LogLevel   string         `yaml:"log_level"`
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string `yaml:"tesseract"`      // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm      string `yaml:"pdftoppm"`       // binary name or absolute path; if empty -> "pdftoppm"
	TesseractLang string `yaml:"tesseract_lang"` // default "eng"
	DPI           int    `yaml:"dpi"`            // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    `yaml:"max_pages"`      // 0 = no limit

	PSM int `yaml:"psm"` // 6 = uniform block of text
	OEM int `yaml:"oem"` // 3 = default engine selection

	EnableTSVConfidence bool `yaml:"enable_tsv_confidence"`
}

// EnhanceConfig holds the pre-OCR image enhancement constants.
type EnhanceConfig struct {
	DenoiseSigma   float64 `yaml:"denoise_sigma"`   // gaussian blur sigma, default 0.8
	Contrast       float64 `yaml:"contrast"`        // contrast stretch percentage, default 20
	ThresholdBlock int     `yaml:"threshold_block"` // adaptive threshold window, odd, default 11
	ThresholdBias  int     `yaml:"threshold_bias"`  // subtracted from local mean, default 2
}

// ValidateConfig holds the completeness scoring threshold.
type ValidateConfig struct {
	MinScore float64 `yaml:"min_score"` // default 0.5
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		OCR: OCRConfig{
			Tesseract:           getEnv("SCAN2CSV_TESSERACT", ""),
			Pdftoppm:            getEnv("SCAN2CSV_PDFTOPPM", ""),
			TesseractLang:       getEnv("SCAN2CSV_LANG", "eng"),
			DPI:                 getEnvAsInt("SCAN2CSV_DPI", 300),
			MaxPages:            getEnvAsInt("SCAN2CSV_MAX_PAGES", 0),
			PSM:                 getEnvAsInt("SCAN2CSV_PSM", 6),
			OEM:                 getEnvAsInt("SCAN2CSV_OEM", 3),
			EnableTSVConfidence: getEnvAsBool("SCAN2CSV_TSV_CONFIDENCE", false),
		},
		Enhance: EnhanceConfig{
			DenoiseSigma:   getEnvAsFloat64("SCAN2CSV_DENOISE_SIGMA", 0.8),
			Contrast:       getEnvAsFloat64("SCAN2CSV_CONTRAST", 20),
			ThresholdBlock: getEnvAsInt("SCAN2CSV_THRESHOLD_BLOCK", 11),
			ThresholdBias:  getEnvAsInt("SCAN2CSV_THRESHOLD_BIAS", 2),
		},
		Validation: ValidateConfig{
			MinScore: getEnvAsFloat64("SCAN2CSV_MIN_SCORE", 0.5),
		},
		LogLevel: getEnv("SCAN2CSV_LOG_LEVEL", "info"),
	}
	return cfg
}

// LoadConfigFile overlays values from a YAML file onto cfg. Unset keys keep
// their current values.
func LoadConfigFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return WrapError(err, "read config file")
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return WrapError(err, "parse config file")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "dpi must be positive", nil)
	}
	if c.Enhance.ThresholdBlock < 3 || c.Enhance.ThresholdBlock%2 == 0 {
		return NewAppError("CONFIG_ERROR", "threshold_block must be odd and >= 3", nil)
	}
	if c.Validation.MinScore < 0 || c.Validation.MinScore > 1 {
		return NewAppError("CONFIG_ERROR", "min_score must be within [0,1]", nil)
	}
	return nil
}

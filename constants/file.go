package constants

import "strings"

// FileTypes holds the allowed source types for an invoice file.
var FileTypes = []string{"PDF", "IMAGE", "TXT"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
	TXT   = "TXT"
)

// AllowedExtensions holds the allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tiff": {},
	"bmp":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (possibly dotted, mixed-case) extension to a source
// type. Returns "" for extensions outside the allow-list.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg", "tiff", "bmp":
		return IMAGE
	case "txt":
		return TXT
	default:
		return ""
	}
}

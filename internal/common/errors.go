package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy for the batch run. Setup-time errors abort the run;
// per-file errors are handled at the processing boundary.
var (
	// ErrDirectoryNotFound is fatal: the input directory does not exist.
	ErrDirectoryNotFound = errors.New("input directory not found")

	// ErrUnreadableImage is recoverable: the file is skipped, the run continues.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrOCREngine is recoverable: the record is emitted with empty text.
	ErrOCREngine = errors.New("ocr engine failure")

	// ErrExport is fatal: an output file could not be written.
	ErrExport = errors.New("export write failure")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

package main

import (
	"errors"
	"os"

	resumeats "github.com/alnah/go-resumeats"
)

// Exit codes for the resumeats CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All requested outputs generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitInput   = 3 // File not found, unreadable, or invalid resume structure
	ExitBrowser = 4 // Browser/Chrome errors (PDF)
	ExitPartial = 5 // Batch finished but some files or formats failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, resumeats.ErrBrowserConnect) ||
		errors.Is(err, resumeats.ErrPageCreate) ||
		errors.Is(err, resumeats.ErrPageLoad) ||
		errors.Is(err, resumeats.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Input errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, resumeats.ErrEmptyMarkdown) ||
		errors.Is(err, resumeats.ErrInvalidEncoding) ||
		errors.Is(err, resumeats.ErrInvalidMarkdown) ||
		errors.Is(err, resumeats.ErrMissingName) ||
		errors.Is(err, resumeats.ErrMissingSection) ||
		errors.Is(err, resumeats.ErrATSCompliance) {
		return ExitInput
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, resumeats.ErrInvalidPageSize) ||
		errors.Is(err, resumeats.ErrInvalidMargin) ||
		errors.Is(err, resumeats.ErrInvalidBulletStyle) ||
		errors.Is(err, resumeats.ErrInvalidLineLength) ||
		errors.Is(err, resumeats.ErrThemeNotFound) ||
		errors.Is(err, resumeats.ErrTemplateNotFound) ||
		errors.Is(err, resumeats.ErrStyleTableNotFound) ||
		errors.Is(err, resumeats.ErrInvalidStyleTable) ||
		errors.Is(err, resumeats.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

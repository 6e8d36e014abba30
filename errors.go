package resumeats

import "errors"

// Sentinel errors for library operations.
var (
	// Input structure errors: fatal, raised before any generation.
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrInvalidMarkdown = errors.New("invalid resume markdown structure")
	ErrMissingName     = errors.New("no top-level heading with candidate name")
	ErrMissingSection  = errors.New("required section missing")

	// Formatting errors: fatal, abort before generation.
	ErrATSCompliance = errors.New("resume fails ATS compliance after formatting")

	// Generation errors: scoped per output format.
	ErrHTMLGeneration = errors.New("HTML generation failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrDOCXGeneration = errors.New("DOCX generation failed")

	// Output quality errors.
	ErrOutputValidation = errors.New("generated output failed validation")

	// Browser errors (PDF rendering).
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Rule validation errors.
	ErrInvalidBulletStyle = errors.New("invalid bullet style")
	ErrInvalidLineLength  = errors.New("invalid max line length")

	// Asset loading errors.
	ErrThemeNotFound      = errors.New("theme not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrStyleTableNotFound = errors.New("docx style table not found")
	ErrInvalidStyleTable  = errors.New("malformed docx style table")
	ErrInvalidAssetPath   = errors.New("invalid asset path")
)

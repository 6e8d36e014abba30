package resumeats

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Output quality checks. Generators are trusted to produce well-formed
// output; these catch truncated writes and corrupt archives before a
// caller ships the file anywhere. The CLI runs them after generation.

// minDOCXSize is the smallest plausible DOCX archive: the required
// package parts alone exceed this.
const minDOCXSize = 1024

// ValidateHTML checks that HTML output is a complete document with the
// resume structure present.
func ValidateHTML(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty HTML output", ErrOutputValidation)
	}
	content := string(data)
	for _, marker := range []string{"<!DOCTYPE html>", "<h1>", "</html>"} {
		if !strings.Contains(content, marker) {
			return fmt.Errorf("%w: HTML missing %s", ErrOutputValidation, marker)
		}
	}
	return nil
}

// ValidatePDF checks the PDF magic header.
func ValidatePDF(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return fmt.Errorf("%w: missing PDF header", ErrOutputValidation)
	}
	return nil
}

// ValidateDOCX checks the ZIP signature, a minimum credible size, and
// that the main document part is present and readable.
func ValidateDOCX(data []byte) error {
	if len(data) < minDOCXSize {
		return fmt.Errorf("%w: DOCX too small (%d bytes)", ErrOutputValidation, len(data))
	}
	if !bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return fmt.Errorf("%w: missing ZIP signature", ErrOutputValidation)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: unreadable archive: %v", ErrOutputValidation, err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return nil
		}
	}
	return fmt.Errorf("%w: word/document.xml not found", ErrOutputValidation)
}

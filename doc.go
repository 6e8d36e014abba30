// Package resumeats converts Markdown-formatted resumes into ATS-optimized
// HTML, PDF, and DOCX documents.
//
// # Quick Start
//
// Create a converter, convert a resume, and close when done:
//
//	conv, err := resumeats.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, resumeats.Input{
//	    Markdown: markdownText,
//	    Path:     "jane-doe.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.html", result.HTML, 0644)
//	os.WriteFile("resume.pdf", result.PDF, 0644)
//	os.WriteFile("resume.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Parsing: the markdown block structure is walked via Goldmark and
//     classified into resume sections (contact, summary, experience,
//     education, skills, projects, certifications).
//  2. ATS formatting: dates and section headers are standardized, bullets
//     normalized, and high-value keywords marked for emphasis.
//  3. Generation: the formatted resume is rendered to semantic HTML,
//     paginated PDF (headless Chrome via go-rod), and OOXML DOCX.
//
// Parsing and formatting errors abort the whole conversion; generation
// errors are scoped per output format, so one broken format does not
// prevent the others from succeeding. Per-format failures are reported in
// ConvertResult.Errors.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := resumeats.NewConverter(
//	    resumeats.WithTimeout(2 * time.Minute),
//	    resumeats.WithRules(rules),
//	    resumeats.WithOutput(output),
//	)
//
// ATSRules controls the formatting stage (bullet character, section order,
// keyword emphasis). OutputConfig controls generation (HTML theme, PDF
// page settings, DOCX style template).
//
// # Themes
//
// Built-in themes: "professional" (default), "modern", "minimal". An
// unknown theme name fails converter construction instead of silently
// falling back, so configuration typos surface immediately.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Set ROD_NO_SANDBOX=1 in containers and
// ROD_BROWSER_BIN to use a pre-installed binary.
package resumeats

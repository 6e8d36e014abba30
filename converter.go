package resumeats

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/alnah/go-resumeats/internal/assets"
)

// Input is the source for one conversion. Markdown takes precedence;
// when empty, Path is read instead.
type Input struct {
	Markdown string
	Path     string
}

// ConvertResult holds the outputs of one conversion. Only formats that
// are enabled and succeeded have non-nil bytes; per-format failures are
// recorded in Errors under the format name, so one broken format never
// blocks the others. Warnings aggregates parser and formatter advisories.
type ConvertResult struct {
	HTML     []byte
	PDF      []byte
	DOCX     []byte
	Warnings []string
	Errors   map[string]error
}

// Ok reports whether every enabled format generated successfully.
func (r *ConvertResult) Ok() bool {
	return len(r.Errors) == 0
}

// Converter orchestrates the markdown-to-resume conversion pipeline:
// parse, format, then per-format generation. Create with NewConverter(),
// use Convert() per resume, and Close() when done.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	htmlGen           htmlGenerator
	docxGen           docxGenerator
	docxInitErr       error // deferred to Convert so HTML/PDF still run
	pdfRenderer       pdfRenderer
}

// publicToInternalAdapter wraps a public AssetLoader as the internal
// assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadTheme(name string) (string, error) {
	return a.pub.LoadTheme(name)
}

func (a *publicToInternalAdapter) LoadTemplate(name string) (string, error) {
	return a.pub.LoadTemplate(name)
}

func (a *publicToInternalAdapter) LoadStyleTable(name string) (string, error) {
	return a.pub.LoadStyleTable(name)
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRules,
// WithOutput, WithAssetPath).
//
// HTML assets are loaded eagerly: an unknown theme or missing template
// fails construction with ErrThemeNotFound / ErrTemplateNotFound. A
// broken DOCX style table does not fail construction; the error is
// reported per-format by Convert so HTML and PDF generation still run.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			rules:   DefaultATSRules(),
			output:  DefaultOutputConfig(),
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.rules.Validate(); err != nil {
		return nil, err
	}
	if err := c.cfg.output.Validate(); err != nil {
		return nil, err
	}

	// Handle WithAssetPath: resolve to internal loader.
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface.
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	formats := c.cfg.output.formats()

	// HTML generator also serves PDF, which prints the generated HTML.
	if slices.Contains(formats, FormatHTML) || slices.Contains(formats, FormatPDF) {
		if c.htmlGen == nil {
			gen, err := c.buildHTMLGenerator()
			if err != nil {
				return nil, err
			}
			c.htmlGen = gen
		}
		if slices.Contains(formats, FormatPDF) && c.pdfRenderer == nil {
			c.pdfRenderer = newRodRenderer(c.cfg.timeout)
		}
	}

	if slices.Contains(formats, FormatDOCX) && c.docxGen == nil {
		gen, err := c.buildDOCXGenerator()
		if err != nil {
			c.docxInitErr = err
		} else {
			c.docxGen = gen
		}
	}

	return c, nil
}

func (c *Converter) buildHTMLGenerator() (htmlGenerator, error) {
	tmplText, err := c.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, convertAssetError(err)
	}
	themeCSS, err := c.assetLoader.LoadTheme(c.cfg.output.HTMLTheme)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return newHTMLGenerator(tmplText, themeCSS, c.cfg.output)
}

func (c *Converter) buildDOCXGenerator() (docxGenerator, error) {
	tableYAML, err := c.assetLoader.LoadStyleTable(c.cfg.output.DOCXTemplate)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return newDOCXGenerator(tableYAML, c.cfg.output)
}

// Convert runs the full pipeline: parse, format, then generation for
// each enabled format. Parse and format errors are fatal; generation
// errors are scoped to their format in ConvertResult.Errors. The context
// bounds PDF rendering.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	markdown, err := resolveInput(input)
	if err != nil {
		return nil, err
	}

	resume, parseWarnings, err := ParseResume(markdown)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	formatted, err := FormatResume(resume, c.cfg.rules)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result = &ConvertResult{
		Warnings: append(parseWarnings, formatted.Warnings...),
		Errors:   make(map[string]error),
	}

	formats := c.cfg.output.formats()
	wantHTML := slices.Contains(formats, FormatHTML)
	wantPDF := slices.Contains(formats, FormatPDF)
	wantDOCX := slices.Contains(formats, FormatDOCX)

	if wantHTML || wantPDF {
		htmlContent, genErr := c.htmlGen.Generate(formatted)
		switch {
		case genErr != nil:
			// PDF prints the HTML, so both formats share this failure.
			if wantHTML {
				result.Errors[FormatHTML] = genErr
			}
			if wantPDF {
				result.Errors[FormatPDF] = genErr
			}
		default:
			if wantHTML {
				result.HTML = []byte(htmlContent)
			}
			if wantPDF {
				pdfBytes, pdfErr := renderPDF(ctx, c.pdfRenderer, htmlContent, c.cfg.output)
				if pdfErr != nil {
					result.Errors[FormatPDF] = pdfErr
				} else {
					result.PDF = pdfBytes
				}
			}
		}
	}

	if wantDOCX {
		switch {
		case c.docxInitErr != nil:
			result.Errors[FormatDOCX] = c.docxInitErr
		default:
			docxBytes, genErr := c.docxGen.Generate(formatted)
			if genErr != nil {
				result.Errors[FormatDOCX] = genErr
			} else {
				result.DOCX = docxBytes
			}
		}
	}

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfRenderer != nil {
		return c.pdfRenderer.Close()
	}
	return nil
}

// resolveInput returns the markdown content, reading Path when Markdown
// is empty.
func resolveInput(input Input) (string, error) {
	if input.Markdown != "" {
		return input.Markdown, nil
	}
	if input.Path == "" {
		return "", ErrEmptyMarkdown
	}
	content, err := os.ReadFile(input.Path) // #nosec G304 -- caller-supplied input path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", input.Path, err)
	}
	return string(content), nil
}

package resumeats

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 2.0
	DefaultMargin = 0.75
)

// Theme names for HTML/PDF stylesheets and DOCX style tables.
const (
	ThemeProfessional = "professional"
	ThemeModern       = "modern"
	ThemeMinimal      = "minimal"
)

// DefaultBullet is the bullet character prefixed to achievement lines.
const DefaultBullet = "•"

// DefaultMaxLineLength is the advisory line-length limit for bullets.
const DefaultMaxLineLength = 80

// defaultTimeout bounds one full conversion (dominated by PDF rendering).
const defaultTimeout = 30 * time.Second

// ATSRules configures the formatting stage.
type ATSRules struct {
	MaxLineLength      int            // advisory limit; violations become warnings, never wraps
	BulletStyle        string         // bullet character, default "•"
	SectionOrder       []string       // rendering order for section keys
	OptimizeKeywords   bool           // enable keyword emphasis
	KeywordEmphasis    map[string]int // term -> weight; only weighted terms are emphasized
	MinOccurrences     int            // emphasize a term only if it appears this often
	RemoveSpecialChars bool           // strip ATS-unfriendly characters from text fields
}

// DefaultATSRules returns the standard rule set.
func DefaultATSRules() ATSRules {
	return ATSRules{
		MaxLineLength:      DefaultMaxLineLength,
		BulletStyle:        DefaultBullet,
		SectionOrder:       DefaultSectionOrder(),
		OptimizeKeywords:   false,
		MinOccurrences:     1,
		RemoveSpecialChars: true,
	}
}

// DefaultSectionOrder returns the ATS-preferred section rendering order.
func DefaultSectionOrder() []string {
	return []string{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
	}
}

// Validate checks that the rules are usable.
func (r ATSRules) Validate() error {
	if r.MaxLineLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineLength, r.MaxLineLength)
	}
	if strings.TrimSpace(r.BulletStyle) == "" {
		return fmt.Errorf("%w: bullet style cannot be blank", ErrInvalidBulletStyle)
	}
	for _, key := range r.SectionOrder {
		if !isSectionKey(key) {
			return fmt.Errorf("%w: unknown section key %q in section order", ErrInvalidBulletStyle, key)
		}
	}
	return nil
}

// sectionOrder resolves the configured order, guaranteeing the three
// required sections are always present in the result.
func (r ATSRules) sectionOrder() []string {
	order := r.SectionOrder
	if len(order) == 0 {
		order = DefaultSectionOrder()
	}
	out := slices.Clone(order)
	for _, required := range []string{SectionExperience, SectionEducation, SectionSkills} {
		if !slices.Contains(out, required) {
			out = append(out, required)
		}
	}
	return out
}

func isSectionKey(key string) bool {
	switch key {
	case SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionProjects, SectionCertifications:
		return true
	}
	return false
}

// Margins holds page margins in inches.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultMargins returns uniform default margins.
func DefaultMargins() Margins {
	return Margins{Top: DefaultMargin, Bottom: DefaultMargin, Left: DefaultMargin, Right: DefaultMargin}
}

// Validate checks that all margins are within bounds.
func (m Margins) Validate() error {
	for _, v := range []float64{m.Top, m.Bottom, m.Left, m.Right} {
		if v < MinMargin || v > MaxMargin {
			return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, v, MinMargin, MaxMargin)
		}
	}
	return nil
}

// Styling holds theme-independent visual settings shared by the
// generators.
type Styling struct {
	FontFamily     string  // must be an ATS-safe system font
	FontSizePt     int     // base font size in points
	LineHeight     float64 // line spacing multiplier
	SectionSpacing int     // spacing between sections in points
}

// DefaultStyling returns the standard styling.
func DefaultStyling() Styling {
	return Styling{
		FontFamily:     "Arial",
		FontSizePt:     11,
		LineHeight:     1.15,
		SectionSpacing: 12,
	}
}

// OutputConfig configures the generation stage.
type OutputConfig struct {
	EnabledFormats []string // subset of "html", "pdf", "docx"; empty = all
	HTMLTheme      string   // stylesheet name for HTML and PDF
	PDFPageSize    string   // "letter" or "a4"
	PDFMargins     Margins
	DOCXTemplate   string // style table name
	DOCXMargins    Margins
	Styling        Styling
}

// DefaultOutputConfig returns output settings for all three formats with
// the professional theme.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		EnabledFormats: []string{FormatHTML, FormatPDF, FormatDOCX},
		HTMLTheme:      ThemeProfessional,
		PDFPageSize:    PageSizeLetter,
		PDFMargins:     DefaultMargins(),
		DOCXTemplate:   ThemeProfessional,
		DOCXMargins:    DefaultMargins(),
		Styling:        DefaultStyling(),
	}
}

// Output format identifiers.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// Validate checks page size, margins, and format names. Theme existence
// is checked at converter construction, where the asset loader is known.
func (o OutputConfig) Validate() error {
	if !isValidPageSize(o.PDFPageSize) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, o.PDFPageSize)
	}
	if err := o.PDFMargins.Validate(); err != nil {
		return fmt.Errorf("pdf margins: %w", err)
	}
	if err := o.DOCXMargins.Validate(); err != nil {
		return fmt.Errorf("docx margins: %w", err)
	}
	for _, f := range o.EnabledFormats {
		switch f {
		case FormatHTML, FormatPDF, FormatDOCX:
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

// formats resolves the enabled format list, defaulting to all three.
func (o OutputConfig) formats() []string {
	if len(o.EnabledFormats) == 0 {
		return []string{FormatHTML, FormatPDF, FormatDOCX}
	}
	return o.EnabledFormats
}

// isValidPageSize checks size against known page sizes (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4:
		return true
	}
	return false
}

// pageDimensions returns paper width and height in inches.
func pageDimensions(size string) (w, h float64) {
	if strings.EqualFold(size, PageSizeA4) {
		return 8.27, 11.69
	}
	return 8.5, 11 // US Letter
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	rules     ATSRules
	output    OutputConfig
	assetPath string
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumeats: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRules sets the ATS formatting rules.
func WithRules(rules ATSRules) Option {
	return func(c *Converter) {
		c.cfg.rules = rules
	}
}

// WithOutput sets the output configuration.
func WithOutput(output OutputConfig) Option {
	return func(c *Converter) {
		c.cfg.output = output
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithAssetPath overrides the asset directory for themes, templates, and
// DOCX style tables. Custom assets take precedence with fallback to the
// embedded defaults.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	resumeats "github.com/alnah/go-resumeats"
	"github.com/alnah/go-resumeats/internal/yamlutil"
)

// Default config file names searched in the working directory when no
// --config flag is given.
var defaultConfigNames = []string{".resumeats.yaml", ".resumeats.yml", "resumeats.yaml"}

// Config is the YAML configuration file surface. Every field is
// optional; zero values fall back to library defaults. The config file
// never reaches the core library directly: loadSettings resolves it
// (with flag overrides) into ATSRules and OutputConfig.
type Config struct {
	ATSRules      ConfigRules   `yaml:"ats_rules"`
	OutputFormats ConfigOutput  `yaml:"output_formats"`
	Styling       ConfigStyling `yaml:"styling"`
}

// ConfigRules mirrors ATSRules in the config file.
type ConfigRules struct {
	MaxLineLength      int            `yaml:"max_line_length"`
	BulletStyle        string         `yaml:"bullet_style"`
	SectionOrder       []string       `yaml:"section_order"`
	OptimizeKeywords   bool           `yaml:"optimize_keywords"`
	KeywordEmphasis    map[string]int `yaml:"keyword_emphasis"`
	MinOccurrences     int            `yaml:"min_occurrences"`
	RemoveSpecialChars *bool          `yaml:"remove_special_chars"`
}

// ConfigOutput mirrors OutputConfig in the config file.
type ConfigOutput struct {
	EnabledFormats  []string      `yaml:"enabled_formats"`
	HTMLTheme       string        `yaml:"html_theme"`
	PDFPageSize     string        `yaml:"pdf_page_size"`
	PDFMargins      ConfigMargins `yaml:"pdf_margins"`
	DOCXTemplate    string        `yaml:"docx_template"`
	DOCXMargins     ConfigMargins `yaml:"docx_margins"`
	DOCXLineSpacing float64       `yaml:"docx_line_spacing"`
}

// ConfigMargins holds page margins in inches. A zero margin means
// "use the default", so 0 is not a valid explicit value.
type ConfigMargins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// ConfigStyling mirrors Styling in the config file. Theme applies to
// both the HTML theme and DOCX style table unless overridden per-format
// under output_formats.
type ConfigStyling struct {
	FontFamily     string  `yaml:"font_family"`
	FontSize       int     `yaml:"font_size"`
	Theme          string  `yaml:"theme"`
	SectionSpacing int     `yaml:"section_spacing"`
	LineHeight     float64 `yaml:"line_height"`
}

// loadConfig loads a config file. With an explicit name (path or bare
// name), a missing file is an error; otherwise the default names are
// searched and absence is fine (returns a zero Config).
func loadConfig(name string) (*Config, error) {
	if name != "" {
		path := name
		if !strings.ContainsRune(name, os.PathSeparator) && !fileExists(path) {
			// Bare name: also try with default extensions.
			for _, ext := range []string{".yaml", ".yml"} {
				if fileExists(name + ext) {
					path = name + ext
					break
				}
			}
		}
		if !fileExists(path) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
		}
		return parseConfigFile(path)
	}

	for _, candidate := range defaultConfigNames {
		if fileExists(candidate) {
			return parseConfigFile(candidate)
		}
	}
	return &Config{}, nil
}

func parseConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}
	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, filepath.Base(path), err)
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolveRules merges config and flags onto the default rule set.
// Flags take precedence over config, config over defaults.
func resolveRules(cfg *Config, f *ruleFlags) resumeats.ATSRules {
	rules := resumeats.DefaultATSRules()

	if cfg.ATSRules.MaxLineLength > 0 {
		rules.MaxLineLength = cfg.ATSRules.MaxLineLength
	}
	if cfg.ATSRules.BulletStyle != "" {
		rules.BulletStyle = cfg.ATSRules.BulletStyle
	}
	if len(cfg.ATSRules.SectionOrder) > 0 {
		rules.SectionOrder = cfg.ATSRules.SectionOrder
	}
	if cfg.ATSRules.OptimizeKeywords {
		rules.OptimizeKeywords = true
	}
	if len(cfg.ATSRules.KeywordEmphasis) > 0 {
		rules.KeywordEmphasis = cfg.ATSRules.KeywordEmphasis
	}
	if cfg.ATSRules.MinOccurrences > 0 {
		rules.MinOccurrences = cfg.ATSRules.MinOccurrences
	}
	if cfg.ATSRules.RemoveSpecialChars != nil {
		rules.RemoveSpecialChars = *cfg.ATSRules.RemoveSpecialChars
	}

	if f.maxLineLength > 0 {
		rules.MaxLineLength = f.maxLineLength
	}
	if f.bullet != "" {
		rules.BulletStyle = f.bullet
	}
	if len(f.sectionOrder) > 0 {
		rules.SectionOrder = f.sectionOrder
	}
	if len(f.keywords) > 0 {
		rules.OptimizeKeywords = true
		if rules.KeywordEmphasis == nil {
			rules.KeywordEmphasis = make(map[string]int, len(f.keywords))
		}
		for _, kw := range f.keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				rules.KeywordEmphasis[kw] = 1
			}
		}
	}
	if f.minOccurrences > 0 {
		rules.MinOccurrences = f.minOccurrences
	}
	if f.keepSpecial {
		rules.RemoveSpecialChars = false
	}

	return rules
}

// resolveOutput merges config and flags onto the default output config.
// styling.theme sets both the HTML theme and DOCX style table; the
// per-format keys under output_formats win over it.
func resolveOutput(cfg *Config, f *outputFlags) resumeats.OutputConfig {
	out := resumeats.DefaultOutputConfig()

	if cfg.Styling.Theme != "" {
		out.HTMLTheme = cfg.Styling.Theme
		out.DOCXTemplate = cfg.Styling.Theme
	}
	if cfg.Styling.FontFamily != "" {
		out.Styling.FontFamily = cfg.Styling.FontFamily
	}
	if cfg.Styling.FontSize > 0 {
		out.Styling.FontSizePt = cfg.Styling.FontSize
	}
	if cfg.Styling.LineHeight > 0 {
		out.Styling.LineHeight = cfg.Styling.LineHeight
	}
	if cfg.Styling.SectionSpacing > 0 {
		out.Styling.SectionSpacing = cfg.Styling.SectionSpacing
	}

	if len(cfg.OutputFormats.EnabledFormats) > 0 {
		out.EnabledFormats = cfg.OutputFormats.EnabledFormats
	}
	if cfg.OutputFormats.HTMLTheme != "" {
		out.HTMLTheme = cfg.OutputFormats.HTMLTheme
	}
	if cfg.OutputFormats.PDFPageSize != "" {
		out.PDFPageSize = cfg.OutputFormats.PDFPageSize
	}
	if m, ok := cfg.OutputFormats.PDFMargins.margins(); ok {
		out.PDFMargins = m
	}
	if cfg.OutputFormats.DOCXTemplate != "" {
		out.DOCXTemplate = cfg.OutputFormats.DOCXTemplate
	}
	if m, ok := cfg.OutputFormats.DOCXMargins.margins(); ok {
		out.DOCXMargins = m
	}
	if cfg.OutputFormats.DOCXLineSpacing > 0 {
		out.Styling.LineHeight = cfg.OutputFormats.DOCXLineSpacing
	}

	if len(f.formats) > 0 {
		out.EnabledFormats = f.formats
	}
	if f.theme != "" {
		out.HTMLTheme = f.theme
		out.DOCXTemplate = f.theme
	}
	if f.docxTemplate != "" {
		out.DOCXTemplate = f.docxTemplate
	}
	if f.pageSize != "" {
		out.PDFPageSize = strings.ToLower(f.pageSize)
	}
	if f.margin > 0 {
		uniform := resumeats.Margins{Top: f.margin, Bottom: f.margin, Left: f.margin, Right: f.margin}
		out.PDFMargins = uniform
		out.DOCXMargins = uniform
	}

	return out
}

// margins converts config margins to library margins. Unset sides
// inherit the default so a partial config block still validates.
func (m ConfigMargins) margins() (resumeats.Margins, bool) {
	if m.Top == 0 && m.Bottom == 0 && m.Left == 0 && m.Right == 0 {
		return resumeats.Margins{}, false
	}
	out := resumeats.DefaultMargins()
	if m.Top > 0 {
		out.Top = m.Top
	}
	if m.Bottom > 0 {
		out.Bottom = m.Bottom
	}
	if m.Left > 0 {
		out.Left = m.Left
	}
	if m.Right > 0 {
		out.Right = m.Right
	}
	return out, true
}

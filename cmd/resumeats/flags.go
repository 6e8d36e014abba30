package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ruleFlags holds ATS formatting rule flags.
type ruleFlags struct {
	bullet         string
	maxLineLength  int
	sectionOrder   []string
	keywords       []string
	minOccurrences int
	keepSpecial    bool
}

// outputFlags holds output format and theme flags.
type outputFlags struct {
	formats      []string
	theme        string
	docxTemplate string
	pageSize     string
	margin       float64
	assetPath    string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	rules   ruleFlags
	out     outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addRuleFlags adds ATS rule flags to a FlagSet.
func addRuleFlags(fs *flag.FlagSet, f *ruleFlags) {
	fs.StringVar(&f.bullet, "bullet", "", "bullet character for achievement lines")
	fs.IntVar(&f.maxLineLength, "max-line-length", 0, "advisory bullet line length limit")
	fs.StringSliceVar(&f.sectionOrder, "section-order", nil, "section rendering order (comma-separated keys)")
	fs.StringSliceVar(&f.keywords, "emphasize", nil, "keywords to bold (comma-separated)")
	fs.IntVar(&f.minOccurrences, "min-occurrences", 0, "emphasize a keyword only if it appears this often")
	fs.BoolVar(&f.keepSpecial, "keep-special-chars", false, "skip ATS special-character cleaning")
}

// addOutputFlags adds output format flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringSliceVarP(&f.formats, "formats", "f", nil, "output formats: html, pdf, docx")
	fs.StringVar(&f.theme, "theme", "", "HTML/PDF theme: professional, modern, minimal")
	fs.StringVar(&f.docxTemplate, "docx-template", "", "DOCX style table name")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4")
	fs.Float64Var(&f.margin, "margin", 0, "uniform page margin in inches (0.25-2.0)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file conversion timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addRuleFlags(fs, &f.rules)
	addOutputFlags(fs, &f.out)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

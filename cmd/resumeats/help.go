package main

import (
	"fmt"
	"io"
)

const usageText = `resumeats - convert markdown resumes to ATS-optimized HTML, PDF, and DOCX

Usage:
  resumeats [flags] <input.md|directory>...

Input:
  One or more markdown files or directories. Directories are scanned
  recursively for .md and .markdown files.

Flags:
  -o, --output <path>          output file or directory (default: next to input)
  -f, --formats <list>         output formats: html, pdf, docx (default: all)
      --theme <name>           HTML/PDF theme: professional, modern, minimal
      --docx-template <name>   DOCX style table (default: same as theme)
  -p, --page-size <size>       page size: letter, a4 (default: letter)
      --margin <inches>        uniform page margin, 0.25-2.0 (default: 0.75)
      --asset-path <dir>       custom themes/templates directory
      --bullet <char>          bullet character (default: •)
      --max-line-length <n>    advisory bullet length limit (default: 80)
      --section-order <list>   section keys in rendering order
      --emphasize <list>       keywords to bold in bullets and summary
      --min-occurrences <n>    emphasize only keywords appearing this often
      --keep-special-chars     skip ATS special-character cleaning
  -w, --workers <n>            parallel workers, 0 = auto (max 8)
  -t, --timeout <dur>          per-file timeout, e.g. 30s, 2m (default: 30s)
  -c, --config <path>          config file (default: .resumeats.yaml)
  -q, --quiet                  only show errors
  -v, --verbose                show detailed progress

Examples:
  resumeats resume.md
  resumeats -f html,docx --theme modern resume.md
  resumeats -o dist/ -w 4 resumes/

Exit codes:
  0 success, 1 general error, 2 usage/config error, 3 input error,
  4 browser error, 5 partial batch failure
`

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

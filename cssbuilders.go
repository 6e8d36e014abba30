package resumeats

import (
	"fmt"
	"strings"
)

// Orphan/widow defaults for print rendering.
const (
	defaultOrphans = 2
	defaultWidows  = 2
)

// atsFontFallbacks appends a generic family so rendering degrades
// gracefully when the configured font is missing.
func atsFontFallbacks(family string) string {
	switch strings.ToLower(family) {
	case "georgia", "times new roman", "garamond", "cambria":
		return fmt.Sprintf("%q, serif", family)
	default:
		return fmt.Sprintf("%q, Helvetica, sans-serif", family)
	}
}

// buildPrintCSS generates the print stylesheet from the output
// configuration: page geometry, base typography, and break control.
// Theme stylesheets layer on top of this.
func buildPrintCSS(output OutputConfig) string {
	var buf strings.Builder

	w, h := pageDimensions(output.PDFPageSize)
	m := output.PDFMargins
	fmt.Fprintf(&buf, `/* Page geometry */
@page {
  size: %.2fin %.2fin;
  margin: %.2fin %.2fin %.2fin %.2fin;
}
`, w, h, m.Top, m.Right, m.Bottom, m.Left)

	s := output.Styling
	fmt.Fprintf(&buf, `
/* Base typography */
body {
  font-family: %s;
  font-size: %dpt;
  line-height: %.2f;
  margin: 0;
  color: #000;
}
.section {
  margin-bottom: %dpt;
}
`, atsFontFallbacks(s.FontFamily), s.FontSizePt, s.LineHeight, s.SectionSpacing)

	buf.WriteString(`
/* Break control: never split an entry across pages */
.entry, .contact-line {
  break-inside: avoid;
  page-break-inside: avoid;
}
h1, h2 {
  break-after: avoid;
  page-break-after: avoid;
}
`)

	fmt.Fprintf(&buf, `
/* Orphan/widow control */
p, li {
  orphans: %d;
  widows: %d;
}
`, defaultOrphans, defaultWidows)

	buf.WriteString(`
/* Bullet characters live in the text for ATS extraction */
ul.bullets, ul.skills {
  list-style: none;
  margin: 0;
  padding-left: 0;
}
`)

	return buf.String()
}

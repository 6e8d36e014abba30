package resumeats

import (
	"strings"
	"testing"
)

func TestBuildPrintCSS(t *testing.T) {
	t.Parallel()

	css := buildPrintCSS(DefaultOutputConfig())

	for _, want := range []string{
		"size: 8.50in 11.00in",
		"margin: 0.75in 0.75in 0.75in 0.75in",
		`font-family: "Arial", Helvetica, sans-serif`,
		"font-size: 11pt",
		"line-height: 1.15",
		"break-inside: avoid",
		"list-style: none",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("print CSS missing %q", want)
		}
	}
}

func TestBuildPrintCSS_A4(t *testing.T) {
	t.Parallel()

	out := DefaultOutputConfig()
	out.PDFPageSize = PageSizeA4

	css := buildPrintCSS(out)
	if !strings.Contains(css, "size: 8.27in 11.69in") {
		t.Errorf("A4 dimensions missing from CSS")
	}
}

func TestATSFontFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family string
		want   string
	}{
		{"Arial", `"Arial", Helvetica, sans-serif`},
		{"Georgia", `"Georgia", serif`},
		{"Times New Roman", `"Times New Roman", serif`},
		{"Calibri", `"Calibri", Helvetica, sans-serif`},
	}
	for _, tt := range tests {
		if got := atsFontFallbacks(tt.family); got != tt.want {
			t.Errorf("atsFontFallbacks(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}

package resumeats

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alnah/go-resumeats/internal/assets"
)

// brokenStyleTableLoader serves embedded themes and templates but a
// malformed DOCX style table.
type brokenStyleTableLoader struct {
	embedded *assets.EmbeddedLoader
}

func newBrokenStyleTableLoader() *brokenStyleTableLoader {
	return &brokenStyleTableLoader{embedded: assets.NewEmbeddedLoader()}
}

func (l *brokenStyleTableLoader) LoadTheme(name string) (string, error) {
	return l.embedded.LoadTheme(name)
}

func (l *brokenStyleTableLoader) LoadTemplate(name string) (string, error) {
	return l.embedded.LoadTemplate(name)
}

func (l *brokenStyleTableLoader) LoadStyleTable(string) (string, error) {
	return "font: Arial\nstyles:\n  title: {size_pt: 0}\n", nil
}

func TestNewConverter_Defaults(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()
}

func TestNewConverter_UnknownTheme(t *testing.T) {
	t.Parallel()

	out := htmlOnly()
	out.HTMLTheme = "no-such-theme"
	_, err := NewConverter(WithOutput(out))
	if !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("NewConverter() error = %v, want ErrThemeNotFound", err)
	}
}

func TestNewConverter_InvalidSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{
			name: "bad page size",
			opt: func() Option {
				out := htmlOnly()
				out.PDFPageSize = "tabloid"
				return WithOutput(out)
			}(),
			wantErr: ErrInvalidPageSize,
		},
		{
			name: "margin out of bounds",
			opt: func() Option {
				out := htmlOnly()
				out.PDFMargins.Top = 5.0
				return WithOutput(out)
			}(),
			wantErr: ErrInvalidMargin,
		},
		{
			name: "blank bullet style",
			opt: func() Option {
				rules := DefaultATSRules()
				rules.BulletStyle = "  "
				return WithRules(rules)
			}(),
			wantErr: ErrInvalidBulletStyle,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConverter(tt.opt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// A broken DOCX style table must not block the other formats: the
// converter still constructs, HTML generates, and only the docx slot in
// the error map is filled.
func TestConvert_BrokenStyleTableScopedToDOCX(t *testing.T) {
	t.Parallel()

	out := DefaultOutputConfig()
	out.EnabledFormats = []string{FormatHTML, FormatDOCX}

	conv, err := NewConverter(WithOutput(out), WithAssetLoader(newBrokenStyleTableLoader()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), Input{Markdown: sampleResume})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(result.HTML) == 0 {
		t.Error("HTML missing despite broken DOCX style table")
	}
	if result.DOCX != nil {
		t.Error("DOCX bytes present despite broken style table")
	}
	if !errors.Is(result.Errors[FormatDOCX], ErrInvalidStyleTable) {
		t.Errorf("Errors[docx] = %v, want ErrInvalidStyleTable", result.Errors[FormatDOCX])
	}
	if result.Ok() {
		t.Error("Ok() = true with a failed format")
	}
}

// Every format must extract to the same bullet text, bullet character
// included.
func TestConvert_BulletTextEqualAcrossFormats(t *testing.T) {
	t.Parallel()

	out := DefaultOutputConfig()
	out.EnabledFormats = []string{FormatHTML, FormatDOCX}

	conv, err := NewConverter(WithOutput(out))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), Input{Markdown: sampleResume})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !result.Ok() {
		t.Fatalf("format errors = %v", result.Errors)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(result.HTML))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	htmlBullets := doc.Find("ul.bullets li").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	if len(htmlBullets) == 0 {
		t.Fatal("no bullets in HTML output")
	}

	docXML := docxPart(t, result.DOCX, "word/document.xml")
	for _, bullet := range htmlBullets {
		if !strings.Contains(docXML, xmlEscape(bullet)) {
			t.Errorf("DOCX missing bullet text %q", bullet)
		}
	}
}

func TestConvert_InputFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.md")
	if err := os.WriteFile(path, []byte(sampleResume), 0o644); err != nil {
		t.Fatal(err)
	}

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), Input{Path: path})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(result.HTML) == 0 {
		t.Error("no HTML generated from file input")
	}
}

func TestConvert_NoInput(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	if _, err := conv.Convert(context.Background(), Input{}); !errors.Is(err, ErrEmptyMarkdown) {
		t.Errorf("Convert() error = %v, want ErrEmptyMarkdown", err)
	}
}

func TestConvert_ParseFailureIsFatal(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	_, err = conv.Convert(context.Background(), Input{Markdown: "no heading at all"})
	if !errors.Is(err, ErrInvalidMarkdown) {
		t.Errorf("Convert() error = %v, want ErrInvalidMarkdown", err)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.Convert(ctx, Input{Markdown: sampleResume}); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvert_WarningsPropagated(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithOutput(htmlOnly()))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	long := strings.Repeat("built another service ", 10)
	markdown := strings.Replace(sampleResume,
		"- Led migration of a legacy monolith to microservices",
		"- "+long, 1)

	result, err := conv.Convert(context.Background(), Input{Markdown: markdown})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected line length warning in result")
	}
}

package resumeats

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

// fakeRenderer captures the rendered file without launching a browser.
type fakeRenderer struct {
	gotPath    string
	gotContent string
	output     []byte
	err        error
	closed     bool
}

func (f *fakeRenderer) RenderFromFile(ctx context.Context, filePath string, output OutputConfig) ([]byte, error) {
	f.gotPath = filePath
	if data, err := os.ReadFile(filePath); err == nil {
		f.gotContent = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func TestRenderPDF(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{output: []byte("%PDF-1.4 fake")}
	html := "<!DOCTYPE html><html><h1>Jane</h1></html>"

	data, err := renderPDF(context.Background(), renderer, html, DefaultOutputConfig())
	if err != nil {
		t.Fatalf("renderPDF() error = %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("data = %q", data)
	}

	if !strings.HasSuffix(renderer.gotPath, ".html") {
		t.Errorf("rendered path = %q, want .html temp file", renderer.gotPath)
	}
	if renderer.gotContent != html {
		t.Errorf("rendered content = %q", renderer.gotContent)
	}
	// Temp file is removed after rendering.
	if _, err := os.Stat(renderer.gotPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp HTML file not cleaned up")
	}
}

func TestRenderPDF_RendererError(t *testing.T) {
	t.Parallel()

	renderer := &fakeRenderer{err: ErrPageLoad}
	_, err := renderPDF(context.Background(), renderer, "<html></html>", DefaultOutputConfig())
	if !errors.Is(err, ErrPageLoad) {
		t.Errorf("renderPDF() error = %v, want ErrPageLoad", err)
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	out := DefaultOutputConfig()
	out.PDFPageSize = PageSizeA4
	out.PDFMargins = Margins{Top: 1, Bottom: 0.5, Left: 0.75, Right: 0.75}

	opts := buildPDFOptions(out)
	if *opts.PaperWidth != 8.27 || *opts.PaperHeight != 11.69 {
		t.Errorf("a4 dimensions = %v x %v", *opts.PaperWidth, *opts.PaperHeight)
	}
	if *opts.MarginTop != 1 || *opts.MarginBottom != 0.5 {
		t.Errorf("margins = %v / %v", *opts.MarginTop, *opts.MarginBottom)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground not set")
	}
}

func TestPageDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size string
		w, h float64
	}{
		{PageSizeLetter, 8.5, 11},
		{"A4", 8.27, 11.69},
		{PageSizeA4, 8.27, 11.69},
		{"", 8.5, 11},
	}

	for _, tt := range tests {
		w, h := pageDimensions(tt.size)
		if w != tt.w || h != tt.h {
			t.Errorf("pageDimensions(%q) = %v x %v, want %v x %v", tt.size, w, h, tt.w, tt.h)
		}
	}
}

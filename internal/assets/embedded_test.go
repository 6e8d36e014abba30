package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	if NewEmbeddedLoader() == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		themeName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads professional theme",
			themeName:   "professional",
			wantContain: "font-family",
		},
		{
			name:        "loads modern theme",
			themeName:   "modern",
			wantContain: "h2",
		},
		{
			name:        "loads minimal theme",
			themeName:   "minimal",
			wantContain: "h1",
		},
		{
			name:      "returns ErrThemeNotFound for nonexistent",
			themeName: "nonexistent-theme-xyz",
			wantErr:   ErrThemeNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			themeName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			themeName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for name with dot",
			themeName: "theme.name",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTheme(tt.themeName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.themeName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme(%q) error = %v", tt.themeName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTheme(%q) content missing %q", tt.themeName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Name}}", "contact-line"} {
		if !strings.Contains(got, want) {
			t.Errorf("template missing %q", want)
		}
	}

	if _, err := loader.LoadTemplate("missing-template"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestEmbeddedLoader_LoadStyleTable(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"professional", "modern", "minimal"} {
		got, err := loader.LoadStyleTable(name)
		if err != nil {
			t.Fatalf("LoadStyleTable(%q) error = %v", name, err)
		}
		for _, want := range []string{"font:", "title:", "bullet:"} {
			if !strings.Contains(got, want) {
				t.Errorf("style table %q missing %q", name, want)
			}
		}
	}

	if _, err := loader.LoadStyleTable("missing-table"); !errors.Is(err, ErrStyleTableNotFound) {
		t.Errorf("LoadStyleTable(missing) error = %v, want ErrStyleTableNotFound", err)
	}
}

package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("HasCustomLoader() = true with empty base path")
		}
	})

	t.Run("with custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("HasCustomLoader() = false with custom path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver("/nonexistent/asset/dir"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_CustomFirstWithFallback(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "professional.css", "/* custom professional */")

	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	// Overridden theme comes from the custom directory.
	got, err := resolver.LoadTheme("professional")
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if got != "/* custom professional */" {
		t.Errorf("LoadTheme() = %q, want custom content", got)
	}

	// Themes absent from the custom directory fall back to embedded.
	got, err = resolver.LoadTheme("modern")
	if err != nil {
		t.Fatalf("LoadTheme(modern) error = %v", err)
	}
	if !strings.Contains(got, "h2") {
		t.Errorf("fallback theme content unexpected: %q", got)
	}

	// Validation errors do not fall back.
	if _, err := resolver.LoadTheme("../escape"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTheme(traversal) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestAssetResolver_EmbeddedOnlyServesDefaults(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := resolver.LoadTemplate(DefaultTemplateName); err != nil {
		t.Errorf("LoadTemplate(default) error = %v", err)
	}
	if _, err := resolver.LoadStyleTable(DefaultThemeName); err != nil {
		t.Errorf("LoadStyleTable(default) error = %v", err)
	}
	if _, err := resolver.LoadTheme("nope"); !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadTheme(nope) error = %v, want ErrThemeNotFound", err)
	}
}

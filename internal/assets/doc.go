// Package assets provides CSS themes, HTML templates, and DOCX style
// tables for resume generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in themes (professional, modern,
// minimal) embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries
// the custom FilesystemLoader first, falling back to EmbeddedLoader if
// the asset is not found. This enables overriding a single theme while
// keeping the rest of the defaults.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # HTML/PDF theme stylesheets
//	├── templates/
//	│   └── {name}.html          # resume HTML templates
//	└── docx/
//	    └── {name}.yaml          # DOCX style tables
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within
// basePath.
package assets

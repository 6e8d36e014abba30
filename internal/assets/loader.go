package assets

// AssetLoader defines the contract for loading themes, templates, and
// DOCX style tables. Implementations may load from embedded assets,
// filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTheme loads a CSS theme by name (without .css extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadStyleTable loads a DOCX style table by name (without .yaml
	// extension). Returns ErrStyleTableNotFound if it doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyleTable(name string) (string, error)
}

// DefaultTemplateName is the name of the built-in resume HTML template.
const DefaultTemplateName = "resume"

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "professional"

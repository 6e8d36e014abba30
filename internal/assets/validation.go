package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a theme, template, or style-table name is
// a bare name safe to use as a filename. Path separators are rejected so
// a name can never navigate outside its asset subdirectory, and dots so
// it can never change the expected extension.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if i := strings.IndexAny(name, `/\.`); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, name[i])
	}
	return nil
}

// Package yamlutil wraps YAML decoding for the module's two YAML
// surfaces: CLI config files and DOCX style tables. Callers never touch
// the YAML library directly, so it can be swapped in one place.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input. Config files and style tables are a few
// kilobytes at most; anything approaching this cap is not one of ours.
var MaxInputSize = 256 << 10

var (
	ErrNilData        = errors.New("yamlutil: no yaml data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: yaml input exceeds size cap")
)

func checkInput(data []byte, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (cap %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// Unmarshal decodes YAML leniently, ignoring unknown fields. The CLI
// config loader uses this so older configs keep working as keys are
// added.
func Unmarshal(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: decoding: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields. Style tables use this: a typo
// in a style key silently falling back to a default would be invisible
// in the rendered document.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: decoding: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: encoding: %w", err)
	}
	return out, nil
}

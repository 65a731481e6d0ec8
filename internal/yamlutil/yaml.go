// Package yamlutil wraps YAML parsing to isolate the external dependency
// behind a minimal surface, so callers never import the YAML library
// directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// Sentinel errors for YAML operations.
var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil destination")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields. Use this
// for config files so typos fail loudly instead of being ignored.
func UnmarshalStrict(data []byte, v any) error {
	if err := validate(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

func validate(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	return nil
}

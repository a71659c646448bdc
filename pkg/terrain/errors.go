package terrain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports parameters that cannot produce a grid.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrOutOfBounds reports a query outside [0, GridSize).
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrUninitializedGrid reports a query issued before any generation completed.
	ErrUninitializedGrid = errors.New("grid not generated")
)

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

func outOfBounds(x, y, size int) error {
	return fmt.Errorf("(%d,%d) in grid of size %d: %w", x, y, size, ErrOutOfBounds)
}

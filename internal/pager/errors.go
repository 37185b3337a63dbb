package pager

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout and configuration preconditions.
// None of them can occur per frame: they are raised only when a pager is
// constructed or resized, and mean the widget cannot render at all.
var (
	ErrInvalidWidth  = errors.New("pager width must be positive")
	ErrInvalidHeight = errors.New("screen height must be positive")
	ErrInvalidCutoff = errors.New("delta cutoff must be in (0, 1]")
	ErrInvalidOption = errors.New("option must be a finite non-negative number")
)

// ConfigError reports which option violated a precondition.
type ConfigError struct {
	Field string  // Option name, e.g. "PagerWidth"
	Value float64 // Rejected value
	Err   error   // One of the sentinel errors above
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pager: %s = %g: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a pager precondition violation.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

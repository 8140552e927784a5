package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration marks malformed or out-of-domain input. It is
// deterministic and caller-fixable, so nothing retries on it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError names the offending field of a rejected configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Invalid returns a *ConfigError for field with a formatted reason.
func Invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

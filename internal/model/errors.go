package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports an input value that makes a simulation impossible to run.
// It is always raised before any month is computed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Invalid builds a ConfigError for field.
func Invalid(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

// IsConfigError reports whether err (or anything it wraps) is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return Invalid(field, "must be >= 0")
	}
	return nil
}

func fraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return Invalid(field, "must be in [0, 1]")
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrChartInvalid is wrapped by every validation failure.
	ErrChartInvalid = errors.New("chart configuration invalid")
	// ErrComponentUnknown is returned for lookups of a component name that
	// is not part of the deployment.
	ErrComponentUnknown = errors.New("unknown component")
)

// ConfigurationError reports a malformed or missing configuration field.
// It names the offending field and the expected format so callers can fix
// their input without reading the source.
type ConfigurationError struct {
	// Field is the dotted path of the offending field, e.g.
	// "database.postgresql.authSecret".
	Field string
	// Reason describes the expected format or the missing precondition.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrChartInvalid }

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

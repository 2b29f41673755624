package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError marks invalid startup configuration. It is fatal: the
// process refuses to start rather than fall back to a weaker posture.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for field.
func NewConfigurationError(field, format string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// ErrResolutionAborted is returned when the user interrupts a resolution
// while it is waiting for clarification input. No partial command is
// surfaced in that case.
var ErrResolutionAborted = errors.New("resolution aborted by user")

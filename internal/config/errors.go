// File: internal/config/errors.go
package config

import "fmt"

// ConfigError reports a rejected configuration value.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// NewConfigError builds a ConfigError for the given field and value.
func NewConfigError(field, value, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

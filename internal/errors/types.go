// File: internal/errors/types.go
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigLoad       ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeConfigSave       ErrorCode = "CONFIG_SAVE_FAILED"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION_FAILED"

	// Panel errors
	ErrCodePanelUnknown      ErrorCode = "PANEL_UNKNOWN"
	ErrCodePanelCreate       ErrorCode = "PANEL_CREATE_FAILED"
	ErrCodePanelNotTracked   ErrorCode = "PANEL_NOT_TRACKED"
	ErrCodeTerminalRequired  ErrorCode = "TERMINAL_REQUIRED"

	// System errors
	ErrCodeSystem     ErrorCode = "SYSTEM_ERROR"
	ErrCodeFileSystem ErrorCode = "FILESYSTEM_ERROR"
	ErrCodePermission ErrorCode = "PERMISSION_DENIED"
	ErrCodeClipboard  ErrorCode = "CLIPBOARD_ERROR"
	ErrCodeTimeout    ErrorCode = "TIMEOUT"

	// Generic errors
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "INFO"
	SeverityWarning  ErrorSeverity = "WARNING"
	SeverityError    ErrorSeverity = "ERROR"
	SeverityCritical ErrorSeverity = "CRITICAL"
)

// ConsoleError represents a standardized error structure
type ConsoleError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Severity ErrorSeverity          `json:"severity"`
	Context  map[string]interface{} `json:"context,omitempty"`
	Cause    error                  `json:"-"` // Don't serialize the underlying error
}

// Error implements the error interface
func (e *ConsoleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping
func (e *ConsoleError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a specific code
func (e *ConsoleError) Is(target error) bool {
	if targetErr, ok := target.(*ConsoleError); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *ConsoleError) WithContext(key string, value interface{}) *ConsoleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity sets the severity level
func (e *ConsoleError) WithSeverity(severity ErrorSeverity) *ConsoleError {
	e.Severity = severity
	return e
}

// WithDetails adds detailed information
func (e *ConsoleError) WithDetails(details string) *ConsoleError {
	e.Details = details
	return e
}

// ToSlogAttrs converts error context to slog attributes
func (e *ConsoleError) ToSlogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("error_code", string(e.Code)),
		slog.String("error_message", e.Message),
		slog.String("severity", string(e.Severity)),
	}

	if e.Details != "" {
		attrs = append(attrs, slog.String("details", e.Details))
	}

	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	for key, value := range e.Context {
		attrs = append(attrs, slog.Any(fmt.Sprintf("ctx_%s", key), value))
	}

	return attrs
}

// New creates a new ConsoleError
func New(code ErrorCode, message string) *ConsoleError {
	return &ConsoleError{
		Code:     code,
		Message:  message,
		Severity: SeverityError,
		Context:  make(map[string]interface{}),
	}
}

// Newf creates a new ConsoleError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConsoleError {
	return &ConsoleError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
		Context:  make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with ConsoleError
func Wrap(code ErrorCode, message string, cause error) *ConsoleError {
	return &ConsoleError{
		Code:     code,
		Message:  message,
		Severity: SeverityError,
		Context:  make(map[string]interface{}),
		Cause:    cause,
	}
}

// IsCode checks if error has specific code
func IsCode(err error, code ErrorCode) bool {
	if cErr, ok := err.(*ConsoleError); ok {
		return cErr.Code == code
	}
	return false
}

// GetCode extracts error code from error
func GetCode(err error) ErrorCode {
	if cErr, ok := err.(*ConsoleError); ok {
		return cErr.Code
	}
	return ErrCodeInternal
}

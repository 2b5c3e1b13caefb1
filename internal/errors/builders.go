// File: internal/errors/builders.go
package errors

import (
	"fmt"
	"os"
)

// Configuration Error Builders
func NewConfigLoadError(path string, cause error) *ConsoleError {
	return Wrap(ErrCodeConfigLoad, "failed to load configuration", cause).
		WithContext("config_path", path).
		WithSeverity(SeverityError)
}

func NewConfigSaveError(path string, cause error) *ConsoleError {
	return Wrap(ErrCodeConfigSave, "failed to save configuration", cause).
		WithContext("config_path", path).
		WithSeverity(SeverityError)
}

func NewConfigValidationError(field, value, message string) *ConsoleError {
	return New(ErrCodeConfigValidation, "configuration validation failed").
		WithDetails(fmt.Sprintf("field '%s' with value '%s': %s", field, value, message)).
		WithContext("field", field).
		WithContext("value", value).
		WithSeverity(SeverityError)
}

// Panel Error Builders
func NewPanelUnknownError(kind string) *ConsoleError {
	return Newf(ErrCodePanelUnknown, "unknown panel kind '%s'", kind).
		WithContext("panel_kind", kind).
		WithSeverity(SeverityError)
}

func NewPanelCreateError(kind string, cause error) *ConsoleError {
	return Wrap(ErrCodePanelCreate, fmt.Sprintf("failed to create panel '%s'", kind), cause).
		WithContext("panel_kind", kind).
		WithSeverity(SeverityError)
}

func NewPanelNotTrackedError(kind string) *ConsoleError {
	return Newf(ErrCodePanelNotTracked, "panel '%s' is not open", kind).
		WithContext("panel_kind", kind).
		WithSeverity(SeverityInfo)
}

func NewTerminalRequiredError() *ConsoleError {
	return New(ErrCodeTerminalRequired, "the workbench requires an interactive terminal").
		WithDetails("stdout is not a TTY").
		WithSeverity(SeverityError)
}

// System Error Builders
func NewFileSystemError(operation, path string, cause error) *ConsoleError {
	return Wrap(ErrCodeFileSystem, fmt.Sprintf("filesystem operation '%s' failed", operation), cause).
		WithContext("operation", operation).
		WithContext("path", path).
		WithSeverity(SeverityError)
}

func NewPermissionError(path string, cause error) *ConsoleError {
	return Wrap(ErrCodePermission, "permission denied", cause).
		WithContext("path", path).
		WithSeverity(SeverityError)
}

func NewClipboardError(cause error) *ConsoleError {
	return Wrap(ErrCodeClipboard, "clipboard operation failed", cause).
		WithSeverity(SeverityWarning)
}

func NewTimeoutError(operation string, duration string) *ConsoleError {
	return Newf(ErrCodeTimeout, "operation '%s' timed out", operation).
		WithDetails(fmt.Sprintf("timeout after %s", duration)).
		WithContext("operation", operation).
		WithSeverity(SeverityError)
}

// Error conversion helpers
func FromOSError(err error, path string) *ConsoleError {
	if err == nil {
		return nil
	}

	if os.IsNotExist(err) {
		return NewFileSystemError("access", path, err).
			WithDetails("file or directory does not exist")
	}

	if os.IsPermission(err) {
		return NewPermissionError(path, err)
	}

	return NewFileSystemError("unknown", path, err)
}

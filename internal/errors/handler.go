// File: internal/errors/handler.go
package errors

import (
	"context"
	"log/slog"

	"console.module/internal/colors"
)

// Handler provides centralized error handling functionality
type Handler struct {
	logger *slog.Logger
}

// DefaultHandler is the global error handler instance
var DefaultHandler *Handler

// InitHandler initializes the global error handler
func InitHandler(logger *slog.Logger) {
	DefaultHandler = &Handler{
		logger: logger,
	}
}

// Handle processes an error with logging and optional context
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}

	var cErr *ConsoleError
	if !AsConsoleError(err, &cErr) {
		// Convert non-ConsoleError to ConsoleError
		cErr = Wrap(ErrCodeInternal, "unexpected error occurred", err)
	}

	h.logError(cErr)
}

// logError logs the error with appropriate level based on severity
func (h *Handler) logError(cErr *ConsoleError) {
	attrs := cErr.ToSlogAttrs()

	switch cErr.Severity {
	case SeverityInfo:
		h.logger.LogAttrs(context.Background(), slog.LevelInfo, "Operation info", attrs...)
	case SeverityWarning:
		h.logger.LogAttrs(context.Background(), slog.LevelWarn, "Operation warning", attrs...)
	case SeverityCritical:
		h.logger.LogAttrs(context.Background(), slog.LevelError, "Critical error", attrs...)
	default:
		h.logger.LogAttrs(context.Background(), slog.LevelError, "Operation error", attrs...)
	}
}

// FormatForUser formats error for user display
func (h *Handler) FormatForUser(err error) string {
	if err == nil {
		return ""
	}

	var cErr *ConsoleError
	if !AsConsoleError(err, &cErr) {
		return colors.SafeColor(err.Error(), colors.Error)
	}

	var colorFunc func(string) string
	switch cErr.Severity {
	case SeverityInfo:
		colorFunc = colors.Info
	case SeverityWarning:
		colorFunc = colors.Warning
	default:
		colorFunc = colors.Error
	}

	message := cErr.Message
	if cErr.Details != "" {
		message += " (" + cErr.Details + ")"
	}

	return colors.SafeColor(message, colorFunc)
}

// Global convenience functions
func Handle(err error) {
	if DefaultHandler != nil {
		DefaultHandler.Handle(err)
	}
}

func FormatForUser(err error) string {
	if DefaultHandler != nil {
		return DefaultHandler.FormatForUser(err)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// AsConsoleError checks if error can be converted to ConsoleError
func AsConsoleError(err error, target **ConsoleError) bool {
	if cErr, ok := err.(*ConsoleError); ok {
		*target = cErr
		return true
	}
	return false
}

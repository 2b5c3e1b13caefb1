// File: internal/audit/audit.go
package audit

import (
	"fmt"
	"log/slog"
	"os"

	"console.module/internal/constants"
)

// Logger is the global audit logger. Commands and the panel registry log
// through it; the log viewer panel reads the file it writes.
var Logger *slog.Logger

// logPath is the file the logger currently writes to.
var logPath string

// InitLogger initializes the audit logger writing to path in the given
// format ("json" or "text"). An empty path or format falls back to the
// defaults.
func InitLogger(path, format string) error {
	if path == "" {
		path = constants.DefaultLogFile
	}
	if format == "" {
		format = constants.DefaultLogFormat
	}

	// Open or create the log file for appending.
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	switch format {
	case constants.LogFormatJSON:
		Logger = slog.New(slog.NewJSONHandler(logFile, nil))
	case constants.LogFormatText:
		Logger = slog.New(slog.NewTextHandler(logFile, nil))
	default:
		logFile.Close()
		return fmt.Errorf("unsupported log format: %s", format)
	}

	logPath = path
	return nil
}

// LogPath returns the path of the active audit log, or the default when
// the logger was never initialized.
func LogPath() string {
	if logPath == "" {
		return constants.DefaultLogFile
	}
	return logPath
}

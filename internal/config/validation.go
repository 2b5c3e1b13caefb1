// File: internal/config/validation.go
package config

import (
	"fmt"
	"strings"

	"console.module/internal/constants"
)

// knownPanels is the set of panel kinds the workbench can open on start.
var knownPanels = map[string]bool{
	constants.PanelLogView:  true,
	constants.PanelSettings: true,
	constants.PanelHelp:     true,
	constants.PanelAbout:    true,
}

// NormalizeName lowercases and trims a configuration value for
// case-insensitive comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateTheme checks if the theme name is supported.
func ValidateTheme(theme string) error {
	switch NormalizeName(theme) {
	case constants.ThemeDark, constants.ThemeLight:
		return nil
	default:
		return NewConfigError("theme", theme, fmt.Sprintf("supported: %s, %s",
			constants.ThemeDark, constants.ThemeLight))
	}
}

// ValidateLogFormat checks if the log format is supported.
func ValidateLogFormat(format string) error {
	switch NormalizeName(format) {
	case constants.LogFormatJSON, constants.LogFormatText:
		return nil
	default:
		return NewConfigError("logformat", format, fmt.Sprintf("supported: %s, %s",
			constants.LogFormatJSON, constants.LogFormatText))
	}
}

// ValidatePanelKind checks if a panel kind is one the workbench knows.
func ValidatePanelKind(kind string) error {
	if knownPanels[NormalizeName(kind)] {
		return nil
	}
	return NewConfigError("default_panels", kind, "unknown panel kind")
}

// ValidateConfig checks the whole configuration for consistency.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return NewConfigError("config", "", "configuration is nil")
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateLogFormat(cfg.LogFormat); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		return NewConfigError("logfile", cfg.LogFile, "log file path cannot be empty")
	}
	for _, kind := range cfg.DefaultPanels {
		if err := ValidatePanelKind(kind); err != nil {
			return err
		}
	}
	return nil
}

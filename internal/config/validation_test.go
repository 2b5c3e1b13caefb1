// File: internal/config/validation_test.go
package config

import (
	"testing"

	"console.module/internal/constants"
)

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		wantErr bool
	}{
		{"dark", constants.ThemeDark, false},
		{"light", constants.ThemeLight, false},
		{"mixed case", "Dark", false},
		{"padded", "  light  ", false},
		{"unknown", "solarized", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTheme(tt.theme)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTheme(%q) err = %v; wantErr %v", tt.theme, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"json", constants.LogFormatJSON, false},
		{"text", constants.LogFormatText, false},
		{"mixed case", "JSON", false},
		{"unknown", "xml", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogFormat(%q) err = %v; wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		Theme:     constants.DefaultTheme,
		LogFile:   constants.DefaultLogFile,
		LogFormat: constants.DefaultLogFormat,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"known default panels", func(c *Config) {
			c.DefaultPanels = []string{constants.PanelHelp, constants.PanelLogView}
		}, false},
		{"unknown default panel", func(c *Config) {
			c.DefaultPanels = []string{"spreadsheet"}
		}, true},
		{"empty log file", func(c *Config) { c.LogFile = "  " }, true},
		{"bad theme", func(c *Config) { c.Theme = "neon" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "yaml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := ValidateConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() err = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("ValidateConfig(nil) returned no error")
	}
}

// File: internal/constants/constants.go
package constants

// Panel kinds
const (
	PanelLogView  = "logview"
	PanelSettings = "settings"
	PanelHelp     = "help"
	PanelAbout    = "about"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Themes
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Defaults
const (
	DefaultLogFile   = "console.log"
	DefaultLogFormat = LogFormatJSON
	DefaultTheme     = ThemeDark
)

// AppName is the binary / module name used in help output.
const AppName = "console.module"

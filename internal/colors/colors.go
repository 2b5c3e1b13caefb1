// File: internal/colors/colors.go
package colors

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for message categories. lipgloss renders through termenv, so the
// escape sequences degrade with the terminal's color profile.
var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Main colors for messages
func Error(text string) string {
	return errorStyle.Render(text)
}

func Success(text string) string {
	return successStyle.Render(text)
}

func Warning(text string) string {
	return warningStyle.Render(text)
}

func Info(text string) string {
	return infoStyle.Render(text)
}

// Additional colors for elements
func Cyan(text string) string {
	return cyanStyle.Render(text)
}

func Dim(text string) string {
	return dimStyle.Render(text)
}

func Bold(text string) string {
	return boldStyle.Render(text)
}

// SupportsColors reports whether colored output should be produced.
func SupportsColors() bool {
	// Honor the NO_COLOR convention unconditionally.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if stdout is connected to a terminal.
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// SafeColor applies colorFunc only when the terminal supports colors.
func SafeColor(text string, colorFunc func(string) string) string {
	if SupportsColors() {
		return colorFunc(text)
	}
	return text
}

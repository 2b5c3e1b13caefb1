// File: internal/tui/panels/styles.go
package panels

import "github.com/charmbracelet/lipgloss"

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	borderFocusedStyle = borderStyle.
				BorderForeground(lipgloss.Color("170"))
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5733")).
			Bold(true)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// frame renders a panel body inside a bordered box with a title bar.
func frame(title, body string, width, height int, focused bool) string {
	style := borderStyle
	if focused {
		style = borderFocusedStyle
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	if height > 4 {
		style = style.Height(height - 2)
	}
	return style.Render(titleStyle.Render(title) + "\n\n" + body)
}

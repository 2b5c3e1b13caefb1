// File: internal/tui/panels/about.go
package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/constants"
	"console.module/internal/registry"
)

// About shows version and project information.
type About struct {
	base
}

func newAbout(_ registry.Owner, bind *registry.Binding) (registry.Resource, error) {
	return &About{
		base: base{
			kind:    bind.Kind(),
			title:   "About",
			bind:    bind,
			focused: true,
		},
	}, nil
}

func (p *About) Update(tea.Msg) tea.Cmd { return nil }

func (p *About) View(width, height int) string {
	body := constants.AppName + `

A terminal workbench with singleton tool panels.
Each panel kind has at most one live instance; the
panel registry raises the existing instance when a
kind is opened again and cleans up when panels close.`

	return frame(p.title, body, width, height, p.focused)
}

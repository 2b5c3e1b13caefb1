// File: internal/tui/panels/help.go
package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/registry"
)

// Help is a static key-binding reference panel.
type Help struct {
	base
}

func newHelp(_ registry.Owner, bind *registry.Binding) (registry.Resource, error) {
	return &Help{
		base: base{
			kind:    bind.Kind(),
			title:   "Help",
			bind:    bind,
			focused: true,
		},
	}, nil
}

func (p *Help) Update(tea.Msg) tea.Cmd { return nil }

func (p *Help) View(width, height int) string {
	body := `WORKBENCH:
  p        toggle the panel picker
  enter    open the selected panel (or raise it if already open)
  tab      cycle focus between open panels
  esc      close the focused panel
  q        close all panels and quit

PANELS:
  Opening a kind that is already open never creates a second
  instance; the existing panel is raised instead.

LOG VIEWER:
  r reload · e export snapshot

SETTINGS:
  tab next field · enter save · ctrl+y copy value`

	return frame(p.title, body, width, height, p.focused)
}

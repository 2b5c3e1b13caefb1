// File: internal/tui/panels/settings.go
package panels

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/config"
	"console.module/internal/registry"
	"console.module/internal/shutdown"
)

// settings field indexes
const (
	fieldTheme = iota
	fieldLogFile
	fieldLogFormat
	fieldCount
)

// Settings edits the workbench configuration. Tab cycles fields, enter
// validates and saves, ctrl+y copies the focused value to the clipboard.
type Settings struct {
	base
	inputs     []textinput.Model
	focusIndex int
	status     string
}

func newSettings(_ registry.Owner, bind *registry.Binding) (registry.Resource, error) {
	inputs := make([]textinput.Model, fieldCount)
	labels := []string{"Theme", "Log file", "Log format"}
	values := []string{config.Cfg.Theme, config.Cfg.LogFile, config.Cfg.LogFormat}
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = labels[i] + ": "
		ti.SetValue(values[i])
		ti.CharLimit = 128
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &Settings{
		base: base{
			kind:    bind.Kind(),
			title:   "Settings",
			bind:    bind,
			focused: true,
		},
		inputs: inputs,
	}, nil
}

// save validates the edited values and persists them.
func (p *Settings) save() {
	theme := strings.TrimSpace(p.inputs[fieldTheme].Value())
	logFile := strings.TrimSpace(p.inputs[fieldLogFile].Value())
	logFormat := strings.TrimSpace(p.inputs[fieldLogFormat].Value())

	candidate := config.Cfg
	candidate.Theme = config.NormalizeName(theme)
	candidate.LogFile = logFile
	candidate.LogFormat = config.NormalizeName(logFormat)

	if err := config.ValidateConfig(&candidate); err != nil {
		p.status = errStyle.Render(err.Error())
		return
	}

	config.Cfg = candidate
	if err := config.SaveConfig(); err != nil {
		p.status = errStyle.Render("save failed: " + err.Error())
		return
	}
	p.status = statusStyle.Render("configuration saved")
}

// copyValue puts the focused field's value on the clipboard and registers
// clipboard cleanup for shutdown.
func (p *Settings) copyValue() {
	value := p.inputs[p.focusIndex].Value()
	if err := clipboard.WriteAll(value); err != nil {
		p.status = errStyle.Render("clipboard: " + err.Error())
		return
	}
	shutdown.RegisterClipboardGlobal("settings value copy")
	p.status = statusStyle.Render("copied to clipboard")
}

func (p *Settings) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			p.inputs[p.focusIndex].Blur()
			if msg.String() == "tab" {
				p.focusIndex = (p.focusIndex + 1) % fieldCount
			} else {
				p.focusIndex = (p.focusIndex + fieldCount - 1) % fieldCount
			}
			p.inputs[p.focusIndex].Focus()
			return nil
		case "enter":
			p.save()
			return nil
		case "ctrl+y":
			p.copyValue()
			return nil
		}
	}
	var cmd tea.Cmd
	p.inputs[p.focusIndex], cmd = p.inputs[p.focusIndex].Update(msg)
	return cmd
}

func (p *Settings) View(width, height int) string {
	var b strings.Builder
	for i := range p.inputs {
		b.WriteString(p.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if p.status != "" {
		b.WriteString(p.status)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab next field · enter save · ctrl+y copy"))
	return frame(p.title, b.String(), width, height, p.focused)
}

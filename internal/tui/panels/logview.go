// File: internal/tui/panels/logview.go
package panels

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/registry"
	"console.module/internal/shutdown"
)

// LogView shows the audit log in a scrollable viewport. 'r' reloads the
// file, 'e' exports the current snapshot to a temp file that is removed
// on shutdown.
type LogView struct {
	base
	path     string
	viewport viewport.Model
	status   string
}

func newLogView(owner registry.Owner, bind *registry.Binding) (registry.Resource, error) {
	host := hostFrom(owner)

	p := &LogView{
		base: base{
			kind:    bind.Kind(),
			title:   "Log Viewer",
			bind:    bind,
			focused: true,
		},
		path:     host.LogPath,
		viewport: viewport.New(60, 16),
	}
	if err := p.reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// reload re-reads the log file into the viewport.
func (p *LogView) reload() error {
	content, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			p.viewport.SetContent(dimStyle.Render("log file does not exist yet: " + p.path))
			return nil
		}
		return err
	}
	if len(content) == 0 {
		p.viewport.SetContent(dimStyle.Render("log is empty"))
		return nil
	}
	p.viewport.SetContent(string(content))
	p.viewport.GotoBottom()
	return nil
}

// export writes the current log snapshot to a temp file registered for
// cleanup on shutdown.
func (p *LogView) export() {
	content, err := os.ReadFile(p.path)
	if err != nil {
		p.status = errStyle.Render("export failed: " + err.Error())
		return
	}
	path, err := shutdown.CreateTempFileWithAutoCleanup(
		"console-log-*.txt", content, "log snapshot export",
		func(pattern string, data []byte) (string, error) {
			f, err := os.CreateTemp("", pattern)
			if err != nil {
				return "", err
			}
			defer f.Close()
			if _, err := f.Write(data); err != nil {
				os.Remove(f.Name())
				return "", err
			}
			return f.Name(), nil
		},
	)
	if err != nil {
		p.status = errStyle.Render("export failed: " + err.Error())
		return
	}
	p.status = statusStyle.Render("exported to " + path)
}

func (p *LogView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if err := p.reload(); err != nil {
				// The log became unreadable underneath us; tear the
				// panel down abruptly rather than display stale data.
				p.status = errStyle.Render("reload failed: " + err.Error())
				p.bind.Destroyed()
				return nil
			}
			p.status = statusStyle.Render("reloaded")
			return nil
		case "e":
			p.export()
			return nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *LogView) View(width, height int) string {
	p.viewport.Width = width - 4
	if h := height - 7; h > 3 {
		p.viewport.Height = h
	}
	body := p.viewport.View()
	footer := dimStyle.Render(fmt.Sprintf("%3.0f%%  r reload · e export", p.viewport.ScrollPercent()*100))
	if p.status != "" {
		footer = p.status + "\n" + footer
	}
	return frame(p.title, body+"\n"+footer, width, height, p.focused)
}

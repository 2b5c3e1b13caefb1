// File: internal/tui/tui.go
package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"console.module/internal/config"
	"console.module/internal/registry"
	"console.module/internal/tui/panels"
)

// --- Styles ---
type Styles struct {
	App, Title, Status, Error, Help lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		App:    lipgloss.NewStyle().Margin(1, 2),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFDF5")).Background(lipgloss.Color("#25A065")).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5733")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// --- Keymaps ---
type KeyMap struct {
	Quit, Picker, Open, Close, CycleFocus key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Picker, k.Open, k.Close, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Picker, k.Open},
		{k.Close, k.CycleFocus},
		{k.Quit},
	}
}

var Keys = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Picker:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "panels")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel")),
	CycleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle focus")),
}

// --- Picker items ---
type pickerItem struct{ info panels.Info }

func (i pickerItem) Title() string       { return i.info.Title }
func (i pickerItem) Description() string { return i.info.Description }
func (i pickerItem) FilterValue() string { return i.info.Title }

// eventFeed records registry events for the status bar. Events arrive
// synchronously on the Update goroutine, but the feed is shared between
// model copies, so it carries its own lock.
type eventFeed struct {
	mu   sync.Mutex
	last string
}

func (f *eventFeed) record(ev registry.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ev.Kind != "" {
		f.last = fmt.Sprintf("%s(%s)", ev.Name, ev.Kind)
	} else {
		f.last = ev.Name
	}
}

func (f *eventFeed) Last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// --- Main Model ---
type model struct {
	reg        *registry.Registry
	host       *panels.Host
	keys       KeyMap
	styles     Styles
	help       help.Model
	picker     list.Model
	open       []panels.Panel
	feed       *eventFeed
	formError  error
	showPicker bool
	width      int
	height     int
}

// NewModel builds the workbench model around an existing registry and
// opens the configured default panels.
func NewModel(reg *registry.Registry, host *panels.Host) tea.Model {
	items := []list.Item{}
	for _, info := range panels.Catalog() {
		items = append(items, pickerItem{info: info})
	}
	picker := list.New(items, list.NewDefaultDelegate(), 36, 14)
	picker.Title = "Open a Panel"
	picker.SetShowHelp(false)
	styles := NewStyles()
	picker.Styles.Title = styles.Title

	feed := &eventFeed{}
	reg.Subscribe(feed.record)

	m := model{
		reg:        reg,
		host:       host,
		keys:       Keys,
		styles:     styles,
		help:       help.New(),
		picker:     picker,
		feed:       feed,
		showPicker: true,
	}

	for _, kind := range config.Cfg.DefaultPanels {
		m.openPanel(registry.Kind(kind))
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

// openPanel acquires the panel for kind, creating it if needed. An
// already-open kind yields the existing panel, raised.
func (m *model) openPanel(kind registry.Kind) {
	factory, ok := panels.FactoryFor(kind)
	if !ok {
		m.formError = fmt.Errorf("unknown panel kind: %s", kind)
		return
	}
	res, err := m.reg.Acquire(kind, m.host, factory)
	if err != nil {
		m.formError = err
		return
	}
	panel, ok := res.(panels.Panel)
	if !ok {
		m.formError = fmt.Errorf("panel %s has an unexpected type", kind)
		return
	}
	m.formError = nil

	// Move the panel to the end of the render order; the last panel has
	// focus.
	for i, p := range m.open {
		if p == panel {
			m.open = append(append(m.open[:i:i], m.open[i+1:]...), panel)
			m.refocus()
			return
		}
	}
	m.open = append(m.open, panel)
	m.refocus()
}

// syncOpen drops panels the registry no longer tracks. A kind may also be
// tracked by a *newer* instance, so identity is checked, not just
// presence.
func (m *model) syncOpen() {
	kept := m.open[:0]
	for _, p := range m.open {
		if res, ok := m.reg.Lookup(p.Kind()); ok && res == registry.Resource(p) {
			kept = append(kept, p)
		}
	}
	m.open = kept
	m.refocus()
}

// refocus gives focus to the last open panel and blurs the rest.
func (m *model) refocus() {
	for i, p := range m.open {
		if i == len(m.open)-1 {
			p.Raise()
		} else {
			p.Blur()
		}
	}
}

func (m *model) focused() panels.Panel {
	if len(m.open) == 0 {
		return nil
	}
	return m.open[len(m.open)-1]
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.picker.SetSize(36, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.reg.ReleaseAll()
			m.syncOpen()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Picker):
			m.showPicker = !m.showPicker
			return m, nil
		}

		if m.showPicker {
			if key.Matches(msg, m.keys.Open) {
				if item, ok := m.picker.SelectedItem().(pickerItem); ok {
					m.openPanel(item.info.Kind)
					m.syncOpen()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Close):
			if p := m.focused(); p != nil {
				m.reg.Release(p.Kind())
				m.syncOpen()
			}
			return m, nil

		case key.Matches(msg, m.keys.CycleFocus):
			if len(m.open) > 1 {
				m.open = append(m.open[1:], m.open[0])
				m.refocus()
			}
			return m, nil
		}

		if p := m.focused(); p != nil {
			cmd := p.Update(msg)
			m.syncOpen()
			return m, cmd
		}
		return m, nil
	}

	if p := m.focused(); p != nil {
		cmd := p.Update(msg)
		m.syncOpen()
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	title := m.styles.Title.Render("console.module — panel workbench")

	columns := []string{}
	if m.showPicker {
		columns = append(columns, m.picker.View())
	}
	panelWidth := 56
	if n := len(m.open); n > 0 && m.width > 0 {
		avail := m.width - 6
		if m.showPicker {
			avail -= 38
		}
		if w := avail / n; w > 28 && w < panelWidth {
			panelWidth = w
		}
	}
	for _, p := range m.open {
		columns = append(columns, p.View(panelWidth, m.height-6))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	status := m.styles.Status.Render(fmt.Sprintf("open: %d %v", m.reg.Count(), m.reg.TrackedKinds()))
	if last := m.feed.Last(); last != "" {
		status += m.styles.Help.Render("  last event: " + last)
	}
	if m.formError != nil {
		status = m.styles.Error.Render(m.formError.Error())
	}

	return m.styles.App.Render(title + "\n\n" + body + "\n" + status + "\n" + m.help.View(m.keys))
}

// Run starts the workbench over the given registry and blocks until the
// user quits. All panels are released before it returns.
func Run(reg *registry.Registry, host *panels.Host) error {
	p := tea.NewProgram(NewModel(reg, host), tea.WithAltScreen())
	_, err := p.Run()

	// The quit path releases everything, but a program error can leave
	// panels tracked; the registry must not outlive the run with stale
	// handles.
	reg.ReleaseAll()
	return err
}

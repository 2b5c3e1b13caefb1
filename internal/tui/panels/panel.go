// File: internal/tui/panels/panel.go
package panels

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/constants"
	"console.module/internal/registry"
)

// Panel kinds, as registry keys.
const (
	KindLogView  = registry.Kind(constants.PanelLogView)
	KindSettings = registry.Kind(constants.PanelSettings)
	KindHelp     = registry.Kind(constants.PanelHelp)
	KindAbout    = registry.Kind(constants.PanelAbout)
)

// Panel is a workbench tool window tracked by the registry. Panels mutate
// in place so the handle the registry returns stays stable across
// updates.
type Panel interface {
	registry.Resource
	Kind() registry.Kind
	Title() string
	Focused() bool
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Host is the owner context the workbench passes through the registry to
// panel factories.
type Host struct {
	Logger  *slog.Logger
	LogPath string
	Theme   string
}

// base carries the state every panel shares. RequestClose delivers the
// finished signal immediately; panels that need teardown work first
// override it.
type base struct {
	kind    registry.Kind
	title   string
	bind    *registry.Binding
	focused bool
	closing bool
}

func (b *base) Kind() registry.Kind { return b.kind }
func (b *base) Title() string       { return b.title }
func (b *base) Focused() bool       { return b.focused }
func (b *base) Blur()               { b.focused = false }

// Raise brings the panel to the foreground when an open kind is acquired
// again.
func (b *base) Raise() { b.focused = true }

// RequestClose confirms the logical close through the lifecycle binding.
// Guarded so a Release racing a ReleaseAll delivers one signal, not two
// (the registry tolerates duplicates anyway).
func (b *base) RequestClose() {
	if b.closing {
		return
	}
	b.closing = true
	b.bind.Finished()
}

// Info describes an openable panel kind for pickers and diagnostics.
type Info struct {
	Kind        registry.Kind
	Title       string
	Description string
}

// Catalog returns the panel kinds the workbench can open, in display
// order.
func Catalog() []Info {
	return []Info{
		{Kind: KindLogView, Title: "Log Viewer", Description: "Tail the audit log"},
		{Kind: KindSettings, Title: "Settings", Description: "Edit workbench configuration"},
		{Kind: KindHelp, Title: "Help", Description: "Key bindings and usage"},
		{Kind: KindAbout, Title: "About", Description: "Version and project info"},
	}
}

// FactoryFor returns the registry factory for a panel kind. The second
// return is false for unknown kinds.
func FactoryFor(kind registry.Kind) (registry.Factory, bool) {
	switch kind {
	case KindLogView:
		return newLogView, true
	case KindSettings:
		return newSettings, true
	case KindHelp:
		return newHelp, true
	case KindAbout:
		return newAbout, true
	default:
		return nil, false
	}
}

// hostFrom extracts the Host from the owner context, tolerating a nil or
// foreign owner.
func hostFrom(owner registry.Owner) *Host {
	if h, ok := owner.(*Host); ok && h != nil {
		return h
	}
	return &Host{Logger: slog.Default(), LogPath: constants.DefaultLogFile, Theme: constants.DefaultTheme}
}

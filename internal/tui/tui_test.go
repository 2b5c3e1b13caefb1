// File: internal/tui/tui_test.go
package tui

import (
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"console.module/internal/config"
	"console.module/internal/constants"
	"console.module/internal/registry"
	"console.module/internal/tui/panels"
)

func testSetup(t *testing.T) (*registry.Registry, *panels.Host) {
	t.Helper()
	config.Cfg = config.Config{
		Theme:     constants.DefaultTheme,
		LogFile:   constants.DefaultLogFile,
		LogFormat: constants.DefaultLogFormat,
	}
	return registry.New(), &panels.Host{
		Logger:  slog.Default(),
		LogPath: filepath.Join(t.TempDir(), "console.log"),
		Theme:   constants.DefaultTheme,
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWorkbenchOpensSelectedPanel(t *testing.T) {
	reg, host := testSetup(t)
	m := NewModel(reg, host).(model)

	// The picker starts visible with the first catalog entry selected.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if reg.Count() != 1 {
		t.Fatalf("Count = %d after opening a panel; expected 1", reg.Count())
	}
	want := panels.Catalog()[0].Kind
	if !reg.IsTracked(want) {
		t.Errorf("IsTracked(%s) = false after picker open", want)
	}

	// Opening the same selection again reuses the instance.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if reg.Count() != 1 {
		t.Errorf("Count = %d after re-open; expected 1 (singleton per kind)", reg.Count())
	}
	if got := len(m.open); got != 1 {
		t.Errorf("workbench renders %d panels; expected 1", got)
	}
}

func TestWorkbenchClosesFocusedPanel(t *testing.T) {
	reg, host := testSetup(t)
	m := NewModel(reg, host).(model)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	// Hide the picker so esc reaches the focused panel.
	next, _ = m.Update(keyRune('p'))
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if reg.Count() != 0 {
		t.Errorf("Count = %d after close; expected 0", reg.Count())
	}
	if len(m.open) != 0 {
		t.Errorf("workbench still renders %d panels after close", len(m.open))
	}
}

func TestWorkbenchQuitReleasesAllPanels(t *testing.T) {
	reg, host := testSetup(t)
	config.Cfg.DefaultPanels = []string{constants.PanelHelp, constants.PanelAbout}
	m := NewModel(reg, host).(model)

	if reg.Count() != 2 {
		t.Fatalf("Count = %d after default panels opened; expected 2", reg.Count())
	}

	next, cmd := m.Update(keyRune('q'))
	m = next.(model)

	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if reg.Count() != 0 {
		t.Errorf("Count = %d after quit; expected 0", reg.Count())
	}
	if len(m.open) != 0 {
		t.Errorf("workbench still renders %d panels after quit", len(m.open))
	}
}

func TestEventFeedRecordsTransitions(t *testing.T) {
	reg, host := testSetup(t)
	m := NewModel(reg, host).(model)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	want := "opened(" + string(panels.Catalog()[0].Kind) + ")"
	if got := m.feed.Last(); got != want {
		t.Errorf("feed.Last() = %q; expected %q", got, want)
	}
}

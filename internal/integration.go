// File: internal/integration.go
package internal

import (
	"os"

	"github.com/atotto/clipboard"

	"console.module/internal/shutdown"
)

// PanelCloser is the slice of the panel registry the shutdown path needs.
// Declared here so the shutdown package never imports the registry.
type PanelCloser interface {
	ReleaseAll()
	Count() int
}

// panelRegistryResource adapts the panel registry to the shutdown
// manager's CleanupResource interface.
type panelRegistryResource struct {
	closer PanelCloser
}

// Cleanup force-closes every tracked panel.
func (r *panelRegistryResource) Cleanup() error {
	r.closer.ReleaseAll()
	return nil
}

func (r *panelRegistryResource) Description() string {
	return "open panels"
}

// InitializeIntegration sets up cross-package integrations.
func InitializeIntegration() {
	// Inject the real cleanup functions; the shutdown package only knows
	// the function shapes.
	shutdown.SetCleanupFunctions(
		os.Remove,
		func() error { return clipboard.WriteAll("") },
	)
}

// RegisterPanelRegistry registers the panel registry for cleanup so a
// signal-driven shutdown releases every open panel before exit.
func RegisterPanelRegistry(closer PanelCloser) {
	if closer == nil {
		return
	}
	shutdown.GetManager().RegisterResource(&panelRegistryResource{closer: closer})
}

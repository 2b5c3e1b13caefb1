// File: cmd/ui.go
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"console.module/internal"
	"console.module/internal/audit"
	"console.module/internal/config"
	"console.module/internal/errors"
	"console.module/internal/registry"
	"console.module/internal/tui"
	"console.module/internal/tui/panels"
)

// auditPublisher forwards registry events to the audit log.
type auditPublisher struct {
	logger *slog.Logger
}

func (p auditPublisher) Publish(ev registry.Event) {
	p.logger.Info("Panel event",
		slog.String("event", ev.Name),
		slog.String("kind", string(ev.Kind)),
	)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the panel workbench.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.NewTerminalRequiredError()
		}

		reg := registry.New(
			registry.WithLogger(audit.Logger),
			registry.WithPublisher(auditPublisher{logger: audit.Logger}),
		)
		// A signal-driven shutdown must release the panels too.
		internal.RegisterPanelRegistry(reg)

		host := &panels.Host{
			Logger:  audit.Logger,
			LogPath: audit.LogPath(),
			Theme:   config.Cfg.Theme,
		}
		return tui.Run(reg, host)
	},
}

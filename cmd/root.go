// File: cmd/root.go
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"console.module/internal/audit"
	"console.module/internal/config"
	"console.module/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:                   "console.module",
	Short:                 "A terminal workbench with singleton tool panels.",
	DisableAutoGenTag:     true,
	DisableSuggestions:    false,
	DisableFlagsInUseLine: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show help if no subcommand is provided
		cmd.Help()
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(); err != nil {
			return errors.NewConfigLoadError("config.json", err)
		}
		if err := audit.InitLogger(config.Cfg.LogFile, config.Cfg.LogFormat); err != nil {
			return fmt.Errorf("failed to initialize audit logger: %s", err.Error())
		}
		errors.InitHandler(audit.Logger)
		if cmd.Use != "console.module" {
			audit.Logger.Info("Command executed", slog.String("command", cmd.Use))
		}
		return nil
	},
}

func Execute() error {
	// No generated completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(panelsCmd)
	rootCmd.AddCommand(configCmd)

	panelsCmd.AddCommand(panelsListCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

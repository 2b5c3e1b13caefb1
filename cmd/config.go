// File: cmd/config.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"console.module/internal/colors"
	"console.module/internal/config"
	"console.module/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the workbench configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("theme:          %s\n", colors.SafeColor(config.Cfg.Theme, colors.Cyan))
		fmt.Printf("logfile:        %s\n", colors.SafeColor(config.Cfg.LogFile, colors.Cyan))
		fmt.Printf("logformat:      %s\n", colors.SafeColor(config.Cfg.LogFormat, colors.Cyan))
		fmt.Printf("default_panels: %s\n", colors.SafeColor(strings.Join(config.Cfg.DefaultPanels, ", "), colors.Cyan))
		fmt.Printf("confirm_quit:   %v\n", config.Cfg.ConfirmQuit)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a configuration field and save it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, value := strings.ToLower(args[0]), args[1]

		switch field {
		case "theme":
			if err := config.ValidateTheme(value); err != nil {
				return errors.NewConfigValidationError(field, value, err.Error())
			}
			config.Cfg.Theme = config.NormalizeName(value)
		case "logfile":
			if strings.TrimSpace(value) == "" {
				return errors.NewConfigValidationError(field, value, "log file path cannot be empty")
			}
			config.Cfg.LogFile = value
		case "logformat":
			if err := config.ValidateLogFormat(value); err != nil {
				return errors.NewConfigValidationError(field, value, err.Error())
			}
			config.Cfg.LogFormat = config.NormalizeName(value)
		default:
			return errors.NewConfigValidationError(field, value, "unknown field (theme, logfile, logformat)")
		}

		if err := config.SaveConfig(); err != nil {
			return errors.NewConfigSaveError("config.json", err)
		}
		fmt.Println(colors.SafeColor("Configuration saved.", colors.Success))
		return nil
	},
}

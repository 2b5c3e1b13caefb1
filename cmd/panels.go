// File: cmd/panels.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"console.module/internal/colors"
	"console.module/internal/tui/panels"
)

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Inspect the available workbench panels.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return nil
	},
}

var panelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the panel kinds the workbench can open.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range panels.Catalog() {
			fmt.Printf("%s  %s\n    %s\n",
				colors.SafeColor(string(info.Kind), colors.Cyan),
				colors.SafeColor(info.Title, colors.Bold),
				colors.SafeColor(info.Description, colors.Dim),
			)
		}
		return nil
	},
}

// File: main.go
package main

import (
	"fmt"
	"os"

	"console.module/cmd"
	"console.module/internal"
	"console.module/internal/errors"
	"console.module/internal/shutdown"
)

func main() {
	// Initialize package integration (registry <-> shutdown)
	internal.InitializeIntegration()

	// Initialize the graceful shutdown manager
	shutdownManager := shutdown.GetManager()

	// Defer shutdown to ensure cleanup happens even on normal exit
	defer func() {
		if !shutdownManager.IsShutdown() {
			shutdownManager.Shutdown()
		}
	}()

	// Execute the root command and check for errors.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errors.FormatForUser(err))

		// Ensure cleanup happens before exit
		if !shutdownManager.IsShutdown() {
			shutdownManager.Shutdown()
		}

		os.Exit(1)
	}
}

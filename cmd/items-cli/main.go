// Package main is the entry point for the items-cli application.
// It initializes the root command, registers the item sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "items_service/cmd/items-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "items-cli",
		Short: "Item catalog CLI tool",
		Long: `items-cli is a command-line client for the items REST API.
Supports creating, retrieving, listing, updating and deleting items.

The target server is selected with the --server flag (default http://localhost:8080).`,
	}

	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "Base URL of the items REST API")

	if err := commands.InitItemCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

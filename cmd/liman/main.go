package main

import (
	"os"

	"github.com/spf13/cobra"

	"liman/internal/interfaces/cli/migrate"
	"liman/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "liman",
		Short: "Liman - subscription license management service",
		Long:  `Liman is the administrative service for managing enterprise subscription plans, customer agreements, products, and plan renewals.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

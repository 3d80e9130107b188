package main

import (
	"os"

	"github.com/spf13/cobra"

	"chamados/internal/interfaces/cli/migrate"
	"chamados/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chamados",
		Short: "Chamados - a support ticket helpdesk service",
		Long:  `Chamados is a support ticket helpdesk with per-ticket chat, read tracking and role-based access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

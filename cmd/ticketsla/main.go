package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ticketsla/ticketsla/internal/interfaces/cli/bootstrap"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/configcmd"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/importer"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/migrate"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/server"
)

func main() {
	var flags bootstrap.Flags

	rootCmd := &cobra.Command{
		Use:          "ticketsla",
		Short:        "Ticket SLA dashboard",
		Long:         `ticketsla imports a ticketing export and serves an authenticated SLA dashboard.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Env, "env", "e", "", "Environment (development, testing, production); defaults to $ENV or $APP_ENV")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")

	rootCmd.AddCommand(
		server.NewCommand(&flags),
		migrate.NewCommand(&flags),
		importer.NewCommand(&flags),
		configcmd.NewCommand(&flags),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

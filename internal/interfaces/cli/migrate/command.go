package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticketsla/ticketsla/internal/infrastructure/database"
	"github.com/ticketsla/ticketsla/internal/infrastructure/migration"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/bootstrap"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

var steps int

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned schema migrations.`,
	}

	cmd.AddCommand(
		newUpCommand(flags),
		newDownCommand(flags),
		newStatusCommand(flags),
	)

	return cmd
}

func newUpCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(*flags, runUp)
		},
	}
}

func newDownCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(*flags, runDown)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStrategy(*flags, runStatus)
		},
	}
}

func withStrategy(flags bootstrap.Flags, fn func(*migration.GooseStrategy, string, logger.Interface) error) error {
	cfg, log, err := bootstrap.Init(flags)
	if err != nil {
		return err
	}
	defer bootstrap.Close(log)

	return fn(migration.NewGooseStrategy(database.CurrentDialect(), log), cfg.App.Environment, log)
}

func runUp(strategy *migration.GooseStrategy, env string, log logger.Interface) error {
	log.Infow("running up migrations", "environment", env)

	if err := strategy.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(strategy *migration.GooseStrategy, env string, log logger.Interface) error {
	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(strategy *migration.GooseStrategy, env string, log logger.Interface) error {
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Dialect:         %s\n", database.CurrentDialect())
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

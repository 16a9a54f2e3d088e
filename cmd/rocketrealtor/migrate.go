package main

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.close()
			return runMigrations(cmd.Context(), a)
		},
	}
}

func runMigrations(ctx context.Context, a *app) error {
	if err := repository.Migrate(ctx, a.db); err != nil {
		a.logger.Error("migration failed", zap.Error(err))
		return err
	}
	a.logger.Info("schema migrated", zap.String("driver", a.cfg.Database.Driver))
	return nil
}

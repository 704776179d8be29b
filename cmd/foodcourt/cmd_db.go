package main

import (
	"context"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/foodcourt/config"
	"github.com/shashiranjanraj/foodcourt/database/migrations"
	"github.com/shashiranjanraj/foodcourt/database/seeders"
	"github.com/shashiranjanraj/foodcourt/pkg/app"
	"github.com/shashiranjanraj/foodcourt/pkg/database"
)

// withDB loads config, opens DB_DRIVER/DATABASE_DSN and closes it after fn.
func withDB(ctx context.Context, fn func(db *gorm.DB) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	db, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}

// foodcourt migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending migrations of the SQL catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			return app.Migrate(cmd.Context(), cmd.OutOrStdout(), db, migrations.Registry())
		})
	},
}

// foodcourt migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			return app.Rollback(cmd.Context(), cmd.OutOrStdout(), db, migrations.Registry())
		})
	},
}

// foodcourt migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show which migrations have run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			return app.MigrateStatus(cmd.Context(), cmd.OutOrStdout(), db, migrations.Registry())
		})
	},
}

// foodcourt seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the built-in catalog into the SQL database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			return app.Seed(cmd.Context(), cmd.OutOrStdout(), db, seeders.Default())
		})
	},
}

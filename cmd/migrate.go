package main

import (
	"context"
	"database/sql"
	root "popdash"
	"popdash/internal/config"
	"popdash/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateRiver brings the river queue tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return err //nolint: wrapcheck
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version

	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		logger.Info(ctx, "river queue schema is up to date", zap.Int("version", currentVersion))

		return nil
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand. By default it applies
// the archive schema and the river queue schema; --status and --down operate
// on the archive schema only.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the archive database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			status, _ := cmd.Flags().GetBool("status")
			down, _ := cmd.Flags().GetBool("down")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB) //nolint: forcetypeassert

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			switch {
			case status:
				if err := goose.StatusContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not get migration status", zap.Error(err))
				}
			case down:
				if err := goose.DownContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not roll back pgsql", zap.Error(err))
				}
			default:
				if err := goose.UpContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
				}
				if err := migrateRiver(ctx, db); err != nil {
					logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
				}
			}
		},
	}

	cmd.Flags().Bool("status", false, "Print the archive schema migration status")
	cmd.Flags().Bool("down", false, "Roll back the latest archive schema migration")
	cmd.MarkFlagsMutuallyExclusive("status", "down")

	return cmd
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"campground/internal/errors"
	"campground/migrations"

	"github.com/pressly/goose/v3"
)

const migrationDialect = "postgres"

// RunMigrations applies every pending embedded migration.
func RunMigrations(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(migrationDialect); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	before, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	after, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	if logger != nil {
		logger.Info("Schema migrations applied",
			slog.Int64("from_version", before),
			slog.Int64("to_version", after),
		)
	}

	return nil
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(migrationDialect); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	if err := goose.DownContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// MigrationStatus logs the applied state of every embedded migration.
func MigrationStatus(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(migrationDialect); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	return errors.Wrap(goose.StatusContext(ctx, sqlDB, "."), "failed to read migration status")
}

package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	if pool == nil {
		log.Info("No exports database configured, skipping migrations")
		return nil
	}
	log.Info("Starting database migrations")

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		log.Info("Migration completed", "name", m.Name)
	}

	log.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

var migrations = []Migration{
	{Name: "create_export_jobs", Up: execMigration(createExportJobs)},
	{Name: "index_export_jobs_created_at", Up: execMigration(indexExportJobsCreatedAt)},
}

const createExportJobs = `
	CREATE TABLE IF NOT EXISTS export_jobs (
		id         UUID PRIMARY KEY,
		status     TEXT NOT NULL,
		filename   TEXT NOT NULL DEFAULT '',
		path       TEXT NOT NULL DEFAULT '',
		pages      INTEGER NOT NULL DEFAULT 0,
		error      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
`

const indexExportJobsCreatedAt = `
	CREATE INDEX IF NOT EXISTS export_jobs_created_at_idx ON export_jobs (created_at DESC);
`

func execMigration(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}

package repository

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// ExportsRepo keeps the history of export jobs. Without a pool every call
// is a no-op.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r == nil || r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, status, filename, path, pages, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, path = EXCLUDED.path, pages = EXCLUDED.pages, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Status, j.Filename, j.Path, j.Pages, j.Error, j.CreatedAt, j.UpdatedAt)
	return errors.Wrap(err, "upsert export job")
}

// Recent returns up to limit jobs, newest first.
func (r *ExportsRepo) Recent(ctx context.Context, limit int) ([]domain.ExportJob, error) {
	if r == nil || r.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var jobs []domain.ExportJob
	err := queryJSON(ctx, r.pool, &jobs, `SELECT coalesce(json_agg(row_to_json(e)), '[]')
		FROM (SELECT id, status, filename, path, pages, error, created_at, updated_at
		      FROM export_jobs ORDER BY created_at DESC LIMIT $1) e`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list export jobs")
	}
	return jobs, nil
}

// queryJSON runs a SQL that returns a single json value and unmarshals it
// into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out any, sql string, args ...any) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. Job tags are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, title, slug, status, tags, display_order, description, location, department, created_at, updated_at`

// Create inserts a new job.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, title, slug, status, tags, display_order, description, location, department, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Slug,
		job.Status,
		tags,
		job.Order,
		nullString(job.Description),
		nullString(job.Location),
		nullString(job.Department),
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

// GetByID fetches a job by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 LIMIT 1`
	return scanJob(r.DB.QueryRowContext(ctx, query, id))
}

// GetBySlug fetches a job by slug.
func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1 LIMIT 1`
	return scanJob(r.DB.QueryRowContext(ctx, query, slug))
}

// List returns jobs filtered by status, sorted per the sort mode.
func (r *PGRepo) List(ctx context.Context, status, sort string) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	if sort == SortByOrder {
		query += ` ORDER BY display_order ASC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Update rewrites all mutable fields of a job.
func (r *PGRepo) Update(ctx context.Context, job Job) error {
	const query = `
UPDATE jobs
SET title = $1, slug = $2, status = $3, tags = $4, display_order = $5,
    description = $6, location = $7, department = $8, updated_at = $9
WHERE id = $10`

	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		job.Title,
		job.Slug,
		job.Status,
		tags,
		job.Order,
		nullString(job.Description),
		nullString(job.Location),
		nullString(job.Department),
		job.UpdatedAt,
		job.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the job and shifts higher orders down to keep the
// sequence contiguous.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var order int
	err = tx.QueryRowContext(ctx, `SELECT display_order FROM jobs WHERE id = $1 FOR UPDATE`, id).Scan(&order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE jobs SET display_order = display_order - 1 WHERE display_order > $1`, order); err != nil {
		return err
	}

	return tx.Commit()
}

// Count returns the total number of jobs.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n)
	return n, err
}

// MaxOrder returns the highest display order, 0 when there are no jobs.
func (r *PGRepo) MaxOrder(ctx context.Context) (int, error) {
	var max int
	err := r.DB.QueryRowContext(ctx, `SELECT COALESCE(MAX(display_order), 0) FROM jobs`).Scan(&max)
	return max, err
}

// Reorder runs the range shift and the target update in one transaction.
// The target row is locked first so a concurrent reorder observes a stale
// fromOrder and fails instead of corrupting the sequence.
func (r *PGRepo) Reorder(ctx context.Context, id string, fromOrder, toOrder int) (Job, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Job{}, err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx, `SELECT display_order FROM jobs WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	if current != fromOrder {
		return Job{}, ErrConflict
	}

	if fromOrder < toOrder {
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET display_order = display_order - 1 WHERE id <> $1 AND display_order BETWEEN $2 AND $3`,
			id, fromOrder+1, toOrder)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET display_order = display_order + 1 WHERE id <> $1 AND display_order BETWEEN $2 AND $3`,
			id, toOrder, fromOrder-1)
	}
	if err != nil {
		return Job{}, err
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE jobs SET display_order = $1, updated_at = $2 WHERE id = $3`,
		toOrder, now, id); err != nil {
		return Job{}, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 LIMIT 1`
	job, err := scanJob(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return Job{}, err
	}

	if err := tx.Commit(); err != nil {
		return Job{}, err
	}
	return job, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var tags []byte
	var description, location, department sql.NullString
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Slug,
		&job.Status,
		&tags,
		&job.Order,
		&description,
		&location,
		&department,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &job.Tags); err != nil {
			return Job{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if description.Valid {
		job.Description = description.String
	}
	if location.Valid {
		job.Location = location.String
	}
	if department.Valid {
		job.Department = department.String
	}
	return job, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

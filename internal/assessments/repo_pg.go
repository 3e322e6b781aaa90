package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Sections are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const assessmentColumns = `id, job_id, title, description, sections, is_active, created_at, updated_at`

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO assessments (id, job_id, title, description, sections, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	sections, err := marshalSections(a.Sections)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		a.ID,
		a.JobID,
		a.Title,
		nullString(a.Description),
		sections,
		a.IsActive,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// GetByID fetches an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1 LIMIT 1`
	return scanAssessment(r.DB.QueryRowContext(ctx, query, id))
}

// GetByJob fetches the assessment attached to a job.
func (r *PGRepo) GetByJob(ctx context.Context, jobID string) (Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE job_id = $1 LIMIT 1`
	return scanAssessment(r.DB.QueryRowContext(ctx, query, jobID))
}

// List returns assessments, optionally filtered by job, newest first.
func (r *PGRepo) List(ctx context.Context, jobID string) ([]Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments`
	var args []any
	if jobID != "" {
		query += ` WHERE job_id = $1`
		args = append(args, jobID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update rewrites all mutable fields of an assessment.
func (r *PGRepo) Update(ctx context.Context, a Assessment) error {
	const query = `
UPDATE assessments
SET job_id = $1, title = $2, description = $3, sections = $4, is_active = $5, updated_at = $6
WHERE id = $7`

	sections, err := marshalSections(a.Sections)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		a.JobID,
		a.Title,
		nullString(a.Description),
		sections,
		a.IsActive,
		a.UpdatedAt,
		a.ID,
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

// Delete removes an assessment.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSections(sections []Section) ([]byte, error) {
	if sections == nil {
		sections = []Section{}
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var sections []byte
	var description sql.NullString
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.Title,
		&description,
		&sections,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &a.Sections); err != nil {
			return Assessment{}, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	if description.Valid {
		a.Description = description.String
	}
	return a, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

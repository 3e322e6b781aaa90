package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Notes are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const candidateColumns = `id, name, email, phone, stage, job_id, resume_key, resume_text, notes, created_at, updated_at`

// Create inserts a new candidate.
func (r *PGRepo) Create(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (id, name, email, phone, stage, job_id, resume_key, resume_text, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	notes, err := marshalNotes(candidate.Notes)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		candidate.ID,
		candidate.Name,
		candidate.Email,
		nullString(candidate.Phone),
		candidate.Stage,
		candidate.JobID,
		nullString(candidate.ResumeKey),
		nullString(candidate.ResumeText),
		notes,
		candidate.CreatedAt,
		candidate.UpdatedAt,
	)
	return err
}

// GetByID fetches a candidate by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1 LIMIT 1`
	return scanCandidate(r.DB.QueryRowContext(ctx, query, id))
}

// List returns candidates filtered by stage, newest first.
func (r *PGRepo) List(ctx context.Context, stage string) ([]Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []any
	if stage != "" {
		query += ` WHERE stage = $1`
		args = append(args, stage)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate)
	}
	return out, rows.Err()
}

// Update rewrites all mutable fields of a candidate.
func (r *PGRepo) Update(ctx context.Context, candidate Candidate) error {
	const query = `
UPDATE candidates
SET name = $1, email = $2, phone = $3, stage = $4, job_id = $5,
    resume_key = $6, resume_text = $7, notes = $8, updated_at = $9
WHERE id = $10`

	notes, err := marshalNotes(candidate.Notes)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		candidate.Name,
		candidate.Email,
		nullString(candidate.Phone),
		candidate.Stage,
		candidate.JobID,
		nullString(candidate.ResumeKey),
		nullString(candidate.ResumeText),
		notes,
		candidate.UpdatedAt,
		candidate.ID,
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

// Delete removes a candidate by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var candidate Candidate
	var phone, resumeKey, resumeText sql.NullString
	var notes []byte
	err := row.Scan(
		&candidate.ID,
		&candidate.Name,
		&candidate.Email,
		&phone,
		&candidate.Stage,
		&candidate.JobID,
		&resumeKey,
		&resumeText,
		&notes,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	if phone.Valid {
		candidate.Phone = phone.String
	}
	if resumeKey.Valid {
		candidate.ResumeKey = resumeKey.String
	}
	if resumeText.Valid {
		candidate.ResumeText = resumeText.String
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &candidate.Notes); err != nil {
			return Candidate{}, fmt.Errorf("unmarshal notes: %w", err)
		}
	}
	return candidate, nil
}

func marshalNotes(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("marshal notes: %w", err)
	}
	return data, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

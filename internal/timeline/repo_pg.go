package timeline

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a timeline entry.
func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO candidate_timeline (id, candidate_id, type, from_stage, to_stage, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var fromStage, toStage sql.NullString
	if entry.FromStage != "" {
		fromStage = sql.NullString{String: entry.FromStage, Valid: true}
	}
	if entry.ToStage != "" {
		toStage = sql.NullString{String: entry.ToStage, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.CandidateID,
		entry.Type,
		fromStage,
		toStage,
		entry.Description,
		entry.CreatedAt,
	)
	return err
}

// ListByCandidate lists entries newest first, optionally filtered by candidate.
func (r *PGRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Entry, error) {
	query := `
SELECT id, candidate_id, type, from_stage, to_stage, description, created_at
FROM candidate_timeline`
	var args []any
	if candidateID != "" {
		query += ` WHERE candidate_id = $1`
		args = append(args, candidateID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		var fromStage, toStage sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.CandidateID,
			&entry.Type,
			&fromStage,
			&toStage,
			&entry.Description,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if fromStage.Valid {
			entry.FromStage = fromStage.String
		}
		if toStage.Valid {
			entry.ToStage = toStage.String
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Delete removes an entry by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM candidate_timeline WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)

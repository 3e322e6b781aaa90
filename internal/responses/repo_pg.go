package responses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentflow-backend/internal/assessments"
)

// PGRepo implements Repo using Postgres. Answers are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const responseColumns = `id, assessment_id, candidate_id, responses, completed_at, created_at, updated_at`

// Create inserts a new response.
func (r *PGRepo) Create(ctx context.Context, resp Response) error {
	const query = `
INSERT INTO assessment_responses (id, assessment_id, candidate_id, responses, completed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	answers, err := marshalAnswers(resp.Responses)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resp.ID,
		resp.AssessmentID,
		resp.CandidateID,
		answers,
		nullTime(resp.CompletedAt),
		resp.CreatedAt,
		resp.UpdatedAt,
	)
	return err
}

// GetByID fetches a response by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Response, error) {
	query := `SELECT ` + responseColumns + ` FROM assessment_responses WHERE id = $1 LIMIT 1`
	return scanResponse(r.DB.QueryRowContext(ctx, query, id))
}

// FindOpen returns the non-finalized response for the pair, if any.
func (r *PGRepo) FindOpen(ctx context.Context, assessmentID, candidateID string) (Response, error) {
	query := `SELECT ` + responseColumns + ` FROM assessment_responses
WHERE assessment_id = $1 AND candidate_id = $2 AND completed_at IS NULL
ORDER BY created_at DESC LIMIT 1`
	return scanResponse(r.DB.QueryRowContext(ctx, query, assessmentID, candidateID))
}

// List returns responses filtered by assessment and candidate, newest
// first.
func (r *PGRepo) List(ctx context.Context, assessmentID, candidateID string) ([]Response, error) {
	query := `SELECT ` + responseColumns + ` FROM assessment_responses`
	var args []any
	var where []string
	if assessmentID != "" {
		args = append(args, assessmentID)
		where = append(where, fmt.Sprintf("assessment_id = $%d", len(args)))
	}
	if candidateID != "" {
		args = append(args, candidateID)
		where = append(where, fmt.Sprintf("candidate_id = $%d", len(args)))
	}
	for i, clause := range where {
		if i == 0 {
			query += ` WHERE ` + clause
		} else {
			query += ` AND ` + clause
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Response
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

// Update rewrites the answers and completion state of a response.
func (r *PGRepo) Update(ctx context.Context, resp Response) error {
	const query = `
UPDATE assessment_responses
SET responses = $1, completed_at = $2, updated_at = $3
WHERE id = $4`

	answers, err := marshalAnswers(resp.Responses)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, answers, nullTime(resp.CompletedAt), resp.UpdatedAt, resp.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a response.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM assessment_responses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalAnswers(answers map[string]assessments.Answer) ([]byte, error) {
	if answers == nil {
		answers = map[string]assessments.Answer{}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("marshal responses: %w", err)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResponse(row rowScanner) (Response, error) {
	var resp Response
	var answers []byte
	var completedAt sql.NullTime
	err := row.Scan(
		&resp.ID,
		&resp.AssessmentID,
		&resp.CandidateID,
		&answers,
		&completedAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Response{}, ErrNotFound
		}
		return Response{}, err
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &resp.Responses); err != nil {
			return Response{}, fmt.Errorf("unmarshal responses: %w", err)
		}
	}
	if completedAt.Valid {
		t := completedAt.Time
		resp.CompletedAt = &t
	}
	return resp, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

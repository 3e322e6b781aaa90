package responses

import (
	"time"

	"talentflow-backend/internal/assessments"
)

// Response is a candidate's answers to an assessment. A response with a
// nil CompletedAt is an editable draft; once completed it is final and a
// later submission for the same pair opens a fresh response.
type Response struct {
	ID           string
	AssessmentID string
	CandidateID  string
	Responses    map[string]assessments.Answer
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Completed reports whether the response has been finalized.
func (r Response) Completed() bool {
	return r.CompletedAt != nil
}

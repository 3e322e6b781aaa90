package responses

import (
	"errors"

	"talentflow-backend/internal/assessments"
)

var (
	ErrNotFound     = errors.New("response not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError rejects a submission and carries the per-question
// failures for the client.
type ValidationError struct {
	Fields []assessments.FieldError
}

func (e *ValidationError) Error() string {
	return "submission failed validation"
}

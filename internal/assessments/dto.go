package assessments

import "time"

// AssessmentResponse is the outward-facing representation of an
// assessment definition.
type AssessmentResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToResponse converts an assessment to its wire representation.
func ToResponse(a Assessment) AssessmentResponse {
	sections := a.Sections
	if sections == nil {
		sections = []Section{}
	}
	return AssessmentResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		Title:       a.Title,
		Description: a.Description,
		Sections:    sections,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toResponses(list []Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}

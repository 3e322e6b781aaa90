package responses

import (
	"time"

	"talentflow-backend/internal/assessments"
)

// ResponseBody is the outward-facing representation of an assessment
// response.
type ResponseBody struct {
	ID           string                        `json:"id"`
	AssessmentID string                        `json:"assessmentId"`
	CandidateID  string                        `json:"candidateId"`
	Responses    map[string]assessments.Answer `json:"responses"`
	Completed    bool                          `json:"completed"`
	CompletedAt  *time.Time                    `json:"completedAt,omitempty"`
	CreatedAt    time.Time                     `json:"createdAt"`
	UpdatedAt    time.Time                     `json:"updatedAt"`
}

func toResponseBody(r Response) ResponseBody {
	answers := r.Responses
	if answers == nil {
		answers = map[string]assessments.Answer{}
	}
	return ResponseBody{
		ID:           r.ID,
		AssessmentID: r.AssessmentID,
		CandidateID:  r.CandidateID,
		Responses:    answers,
		Completed:    r.Completed(),
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toResponseBodies(list []Response) []ResponseBody {
	out := make([]ResponseBody, 0, len(list))
	for _, r := range list {
		out = append(out, toResponseBody(r))
	}
	return out
}

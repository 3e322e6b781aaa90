package candidates

import "time"

// CandidateResponse is the outward-facing representation of a candidate.
type CandidateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Stage     string    `json:"stage"`
	JobID     string    `json:"jobId"`
	Resume    string    `json:"resume,omitempty"`
	Notes     []Note    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListResponse is a paginated page of candidates.
type ListResponse struct {
	Data       []CandidateResponse `json:"data"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
}

func toResponse(candidate Candidate) CandidateResponse {
	notes := candidate.Notes
	if notes == nil {
		notes = []Note{}
	}
	return CandidateResponse{
		ID:        candidate.ID,
		Name:      candidate.Name,
		Email:     candidate.Email,
		Phone:     candidate.Phone,
		Stage:     candidate.Stage,
		JobID:     candidate.JobID,
		Resume:    candidate.ResumeKey,
		Notes:     notes,
		CreatedAt: candidate.CreatedAt,
		UpdatedAt: candidate.UpdatedAt,
	}
}

func toListResponse(result ListResult) ListResponse {
	data := make([]CandidateResponse, 0, len(result.Data))
	for _, candidate := range result.Data {
		data = append(data, toResponse(candidate))
	}
	return ListResponse{
		Data:       data,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
}

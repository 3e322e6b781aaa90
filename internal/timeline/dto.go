package timeline

import "time"

// EntryResponse is the outward-facing representation of a timeline entry.
type EntryResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Type        string    `json:"type"`
	FromStage   string    `json:"fromStage,omitempty"`
	ToStage     string    `json:"toStage,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse converts an entry for API output.
func ToResponse(entry Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		CandidateID: entry.CandidateID,
		Type:        entry.Type,
		FromStage:   entry.FromStage,
		ToStage:     entry.ToStage,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

// ToResponses converts a list of entries for API output.
func ToResponses(entries []Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ToResponse(entry))
	}
	return out
}

package candidates

import "time"

// Hiring pipeline stages.
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

// Candidate tracks one applicant against a job.
type Candidate struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Stage      string
	JobID      string
	ResumeKey  string
	ResumeText string
	Notes      []Note
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Note is a free-form comment attached to a candidate.
type Note struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Mentions   []string  `json:"mentions"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ValidStage reports whether s is a known hiring stage.
func ValidStage(s string) bool {
	switch s {
	case StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected:
		return true
	default:
		return false
	}
}

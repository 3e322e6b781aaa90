package timeline

import "time"

// Entry types.
const (
	TypeStageChange         = "stage_change"
	TypeNoteAdded           = "note_added"
	TypeAssessmentCompleted = "assessment_completed"
	TypeInterviewScheduled  = "interview_scheduled"
)

// Entry is an immutable audit record of a candidate-affecting event.
// Entries are only ever created and (administratively) deleted.
type Entry struct {
	ID          string
	CandidateID string
	Type        string
	FromStage   string
	ToStage     string
	Description string
	CreatedAt   time.Time
}

// ValidType reports whether t is a known entry type.
func ValidType(t string) bool {
	switch t {
	case TypeStageChange, TypeNoteAdded, TypeAssessmentCompleted, TypeInterviewScheduled:
		return true
	default:
		return false
	}
}

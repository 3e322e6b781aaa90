package jobs

import "time"

// Job statuses.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Job is a posting whose Order places it on the board. Orders across all
// jobs form a contiguous ascending sequence starting at 1.
type Job struct {
	ID          string
	Title       string
	Slug        string
	Status      string
	Tags        []string
	Order       int
	Description string
	Location    string
	Department  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStatus reports whether s is a known job status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusArchived
}

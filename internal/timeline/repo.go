package timeline

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("timeline entry not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo defines persistence operations for timeline entries.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	// ListByCandidate returns entries newest first; empty candidateID
	// returns all entries.
	ListByCandidate(ctx context.Context, candidateID string) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

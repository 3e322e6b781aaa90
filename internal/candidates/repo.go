package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, candidate Candidate) error
	GetByID(ctx context.Context, id string) (Candidate, error)
	// List returns all candidates matching stage (empty for all), newest
	// first.
	List(ctx context.Context, stage string) ([]Candidate, error)
	Update(ctx context.Context, candidate Candidate) error
	Delete(ctx context.Context, id string) error
}

package responses

import "context"

// Repo is the persistence contract for assessment responses.
type Repo interface {
	Create(ctx context.Context, r Response) error
	GetByID(ctx context.Context, id string) (Response, error)
	// FindOpen returns the non-finalized response for the pair, if any.
	FindOpen(ctx context.Context, assessmentID, candidateID string) (Response, error)
	List(ctx context.Context, assessmentID, candidateID string) ([]Response, error)
	Update(ctx context.Context, r Response) error
	Delete(ctx context.Context, id string) error
}

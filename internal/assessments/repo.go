package assessments

import "context"

// Repo is the persistence contract for assessments. Sections are stored
// as a single document alongside the assessment row.
type Repo interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	GetByJob(ctx context.Context, jobID string) (Assessment, error)
	List(ctx context.Context, jobID string) ([]Assessment, error)
	Update(ctx context.Context, a Assessment) error
	Delete(ctx context.Context, id string) error
}

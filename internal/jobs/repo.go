package jobs

import "context"

// Sort modes for List.
const (
	SortByOrder   = "order"
	SortByCreated = "createdAt"
)

// Repo defines persistence operations for jobs.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	GetBySlug(ctx context.Context, slug string) (Job, error)
	// List returns all jobs matching status (empty for all), sorted by
	// display order ascending or created time descending.
	List(ctx context.Context, status, sort string) ([]Job, error)
	Update(ctx context.Context, job Job) error
	// Delete removes the job and closes the gap it leaves in the order
	// sequence.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	MaxOrder(ctx context.Context) (int, error)
	// Reorder moves the job to toOrder and shifts the intervening range by
	// one, atomically. It fails with ErrConflict when the stored order no
	// longer equals fromOrder.
	Reorder(ctx context.Context, id string, fromOrder, toOrder int) (Job, error)
}

package jobs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Job
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Job)}
}

// Create stores a job.
func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[job.ID] = job
	return nil
}

// GetByID returns a job by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.data[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// GetBySlug returns a job by slug.
func (r *MemoryRepo) GetBySlug(ctx context.Context, slug string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, job := range r.data {
		if job.Slug == slug {
			return job, nil
		}
	}
	return Job{}, ErrNotFound
}

// List returns jobs filtered by status, sorted per the sort mode.
func (r *MemoryRepo) List(ctx context.Context, status, sortMode string) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Job, 0, len(r.data))
	for _, job := range r.data {
		if status != "" && job.Status != status {
			continue
		}
		out = append(out, job)
	}
	r.mu.RUnlock()

	if sortMode == SortByOrder {
		sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

// Update overwrites a stored job.
func (r *MemoryRepo) Update(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[job.ID]; !ok {
		return ErrNotFound
	}
	r.data[job.ID] = job
	return nil
}

// Delete removes a job and closes the order gap.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	for key, other := range r.data {
		if other.Order > job.Order {
			other.Order--
			r.data[key] = other
		}
	}
	return nil
}

// Count returns the number of stored jobs.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

// MaxOrder returns the highest order, 0 when empty.
func (r *MemoryRepo) MaxOrder(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	max := 0
	for _, job := range r.data {
		if job.Order > max {
			max = job.Order
		}
	}
	return max, nil
}

// Reorder applies the range shift under the write lock so concurrent
// reorders serialize.
func (r *MemoryRepo) Reorder(ctx context.Context, id string, fromOrder, toOrder int) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.data[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	if job.Order != fromOrder {
		return Job{}, ErrConflict
	}

	for key, other := range r.data {
		if key == id {
			continue
		}
		if fromOrder < toOrder && other.Order > fromOrder && other.Order <= toOrder {
			other.Order--
			r.data[key] = other
		} else if fromOrder > toOrder && other.Order >= toOrder && other.Order < fromOrder {
			other.Order++
			r.data[key] = other
		}
	}

	job.Order = toOrder
	job.UpdatedAt = time.Now().UTC()
	r.data[id] = job
	return job, nil
}

var _ Repo = (*MemoryRepo)(nil)

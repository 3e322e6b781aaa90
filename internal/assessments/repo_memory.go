package assessments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Assessment)}
}

// Create stores an assessment.
func (r *MemoryRepo) Create(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[a.ID] = Clone(a)
	return nil
}

// GetByID returns an assessment by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.data[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return Clone(a), nil
}

// GetByJob returns the assessment attached to a job.
func (r *MemoryRepo) GetByJob(ctx context.Context, jobID string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.data {
		if a.JobID == jobID {
			return Clone(a), nil
		}
	}
	return Assessment{}, ErrNotFound
}

// List returns assessments, optionally filtered by job, newest first.
func (r *MemoryRepo) List(ctx context.Context, jobID string) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Assessment, 0, len(r.data))
	for _, a := range r.data {
		if jobID != "" && a.JobID != jobID {
			continue
		}
		out = append(out, Clone(a))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update overwrites a stored assessment.
func (r *MemoryRepo) Update(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[a.ID]; !ok {
		return ErrNotFound
	}
	r.data[a.ID] = Clone(a)
	return nil
}

// Delete removes an assessment.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)

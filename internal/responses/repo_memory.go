package responses

import (
	"context"
	"sort"
	"sync"

	"talentflow-backend/internal/assessments"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Response
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Response)}
}

// Create stores a response.
func (r *MemoryRepo) Create(ctx context.Context, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resp.ID] = cloneResponse(resp)
	return nil
}

// GetByID returns a response by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resp, ok := r.data[id]
	if !ok {
		return Response{}, ErrNotFound
	}
	return cloneResponse(resp), nil
}

// FindOpen returns the non-finalized response for the pair, if any.
func (r *MemoryRepo) FindOpen(ctx context.Context, assessmentID, candidateID string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resp := range r.data {
		if resp.AssessmentID == assessmentID && resp.CandidateID == candidateID && !resp.Completed() {
			return cloneResponse(resp), nil
		}
	}
	return Response{}, ErrNotFound
}

// List returns responses filtered by assessment and candidate, newest
// first.
func (r *MemoryRepo) List(ctx context.Context, assessmentID, candidateID string) ([]Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Response, 0, len(r.data))
	for _, resp := range r.data {
		if assessmentID != "" && resp.AssessmentID != assessmentID {
			continue
		}
		if candidateID != "" && resp.CandidateID != candidateID {
			continue
		}
		out = append(out, cloneResponse(resp))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update overwrites a stored response.
func (r *MemoryRepo) Update(ctx context.Context, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[resp.ID]; !ok {
		return ErrNotFound
	}
	r.data[resp.ID] = cloneResponse(resp)
	return nil
}

// Delete removes a response.
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

func cloneResponse(resp Response) Response {
	out := resp
	if resp.Responses != nil {
		out.Responses = make(map[string]assessments.Answer, len(resp.Responses))
		for k, v := range resp.Responses {
			out.Responses[k] = v
		}
	}
	if resp.CompletedAt != nil {
		t := *resp.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)

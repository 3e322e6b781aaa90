package timeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for the candidate timeline.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record appends a new immutable entry. fromStage/toStage are only
// meaningful for stage_change entries and may be empty otherwise.
func (s *Service) Record(ctx context.Context, candidateID, entryType, fromStage, toStage, description string) (Entry, error) {
	if strings.TrimSpace(candidateID) == "" {
		return Entry{}, fmt.Errorf("%w: candidateId is required", ErrInvalidInput)
	}
	if !ValidType(entryType) {
		return Entry{}, fmt.Errorf("%w: unknown entry type %q", ErrInvalidInput, entryType)
	}
	if strings.TrimSpace(description) == "" {
		return Entry{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	entry := Entry{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Type:        entryType,
		FromStage:   fromStage,
		ToStage:     toStage,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// ListByCandidate returns entries newest first.
func (s *Service) ListByCandidate(ctx context.Context, candidateID string) ([]Entry, error) {
	return s.Repo.ListByCandidate(ctx, candidateID)
}

// Delete removes an entry; timeline entries are otherwise immutable.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

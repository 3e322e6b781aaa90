package assessments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for assessment definitions.
type Service struct {
	Repo Repo
}

// Input carries an assessment definition as accepted from clients.
type Input struct {
	JobID       string
	Title       string
	Description string
	Sections    []Section
	IsActive    *bool
}

// List returns assessments, optionally filtered by job, newest first.
func (s *Service) List(ctx context.Context, jobID string) ([]Assessment, error) {
	return s.Repo.List(ctx, jobID)
}

// Get returns an assessment by ID.
func (s *Service) Get(ctx context.Context, id string) (Assessment, error) {
	if strings.TrimSpace(id) == "" {
		return Assessment{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// GetByJob returns the assessment attached to a job.
func (s *Service) GetByJob(ctx context.Context, jobID string) (Assessment, error) {
	if strings.TrimSpace(jobID) == "" {
		return Assessment{}, fmt.Errorf("%w: jobId is required", ErrInvalidInput)
	}
	return s.Repo.GetByJob(ctx, jobID)
}

// Create validates and stores a new assessment.
func (s *Service) Create(ctx context.Context, input Input) (Assessment, error) {
	a, err := s.fromInput(input)
	if err != nil {
		return Assessment{}, err
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.Repo.Create(ctx, a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// Update replaces the definition of an existing assessment.
func (s *Service) Update(ctx context.Context, id string, input Input) (Assessment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Assessment{}, err
	}

	a, err := s.fromInput(input)
	if err != nil {
		return Assessment{}, err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	if a.JobID == "" {
		a.JobID = existing.JobID
	}
	if input.IsActive == nil {
		a.IsActive = existing.IsActive
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// UpsertByJob stores the definition for a job, replacing any existing
// one while preserving its identity and creation time.
func (s *Service) UpsertByJob(ctx context.Context, jobID string, input Input) (Assessment, error) {
	if strings.TrimSpace(jobID) == "" {
		return Assessment{}, fmt.Errorf("%w: jobId is required", ErrInvalidInput)
	}
	input.JobID = jobID

	a, err := s.fromInput(input)
	if err != nil {
		return Assessment{}, err
	}

	now := time.Now().UTC()
	existing, err := s.Repo.GetByJob(ctx, jobID)
	switch {
	case err == nil:
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		a.UpdatedAt = now
		if input.IsActive == nil {
			a.IsActive = existing.IsActive
		}
		if err := s.Repo.Update(ctx, a); err != nil {
			return Assessment{}, err
		}
	case errors.Is(err, ErrNotFound):
		a.ID = uuid.NewString()
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := s.Repo.Create(ctx, a); err != nil {
			return Assessment{}, err
		}
	default:
		return Assessment{}, err
	}
	return a, nil
}

// Delete removes an assessment.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// fromInput normalizes the definition and validates it. Missing section
// and question ids are assigned; missing orders default to the element's
// position.
func (s *Service) fromInput(input Input) (Assessment, error) {
	a := Assessment{
		JobID:       strings.TrimSpace(input.JobID),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Sections:    cloneSections(input.Sections),
		IsActive:    input.IsActive != nil && *input.IsActive,
	}
	if a.Sections == nil {
		a.Sections = []Section{}
	}
	for i := range a.Sections {
		section := &a.Sections[i]
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
		if section.Order <= 0 {
			section.Order = i + 1
		}
		if section.Questions == nil {
			section.Questions = []Question{}
		}
		for j := range section.Questions {
			q := &section.Questions[j]
			if q.ID == "" {
				q.ID = uuid.NewString()
			}
			if q.Order <= 0 {
				q.Order = j + 1
			}
		}
	}

	if err := ValidateDefinition(a); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

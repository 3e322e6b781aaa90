package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"talentflow-backend/internal/shared/metrics"
)

// Service contains business logic for jobs and owns the display order
// invariant: orders always form {1..N} after each sequential operation.
type Service struct {
	Repo Repo
}

// ListParams filters and paginates the job list.
type ListParams struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// ListResult is one page of jobs.
type ListResult struct {
	Data       []Job
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// CreateInput carries the fields accepted on job creation.
type CreateInput struct {
	Title       string
	Slug        string
	Status      string
	Tags        []string
	Description string
	Location    string
	Department  string
}

// UpdateInput carries a partial job update; nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Slug        *string
	Status      *string
	Tags        *[]string
	Description *string
	Location    *string
	Department  *string
}

// List returns a page of jobs. Search matches title or tags
// case-insensitively; pagination happens after filtering so total reflects
// the filtered set.
func (s *Service) List(ctx context.Context, params ListParams) (ListResult, error) {
	if params.Status != "" && !ValidStatus(params.Status) {
		return ListResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, params.Status)
	}

	all, err := s.Repo.List(ctx, params.Status, params.Sort)
	if err != nil {
		return ListResult{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		filtered := all[:0]
		for _, job := range all {
			if matchesSearch(job, search) {
				filtered = append(filtered, job)
			}
		}
		all = filtered
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.PageSize
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	total := len(all)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return ListResult{
		Data:       all[start:end],
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}, nil
}

// Create validates the input and appends the job at the end of the order
// sequence.
func (s *Service) Create(ctx context.Context, input CreateInput) (Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = StatusActive
	}
	if !ValidStatus(status) {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return Job{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if _, err := s.Repo.GetBySlug(ctx, slug); err == nil {
		return Job{}, ErrSlugTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Job{}, err
	}

	maxOrder, err := s.Repo.MaxOrder(ctx)
	if err != nil {
		return Job{}, err
	}

	now := time.Now().UTC()
	job := Job{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        slug,
		Status:      status,
		Tags:        input.Tags,
		Order:       maxOrder + 1,
		Description: input.Description,
		Location:    input.Location,
		Department:  input.Department,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, id string) (Job, error) {
	if strings.TrimSpace(id) == "" {
		return Job{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// Update merges the provided fields into the stored job.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Job, error) {
	job, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return Job{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		job.Title = title
	}
	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug == "" {
			return Job{}, fmt.Errorf("%w: slug cannot be empty", ErrInvalidInput)
		}
		if slug != job.Slug {
			if other, err := s.Repo.GetBySlug(ctx, slug); err == nil && other.ID != job.ID {
				return Job{}, ErrSlugTaken
			} else if err != nil && !errors.Is(err, ErrNotFound) {
				return Job{}, err
			}
			job.Slug = slug
		}
	}
	if input.Status != nil {
		if !ValidStatus(*input.Status) {
			return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		job.Status = *input.Status
	}
	if input.Tags != nil {
		job.Tags = *input.Tags
		if job.Tags == nil {
			job.Tags = []string{}
		}
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Department != nil {
		job.Department = *input.Department
	}

	job.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Delete removes the job; the repo closes the resulting order gap.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// Reorder moves the job from fromOrder to toOrder, shifting the jobs in
// between by one slot. toOrder must lie within the occupied range [1, N].
func (s *Service) Reorder(ctx context.Context, id string, fromOrder, toOrder int) (Job, error) {
	if fromOrder < 1 {
		return Job{}, fmt.Errorf("%w: fromOrder must be positive", ErrInvalidInput)
	}
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return Job{}, err
	}
	if toOrder < 1 || toOrder > count {
		return Job{}, fmt.Errorf("%w: toOrder must be within [1, %d]", ErrInvalidInput, count)
	}

	if fromOrder == toOrder {
		return s.Repo.GetByID(ctx, id)
	}

	job, err := s.Repo.Reorder(ctx, id, fromOrder, toOrder)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.IncReorderConflicts()
		}
		return Job{}, err
	}
	metrics.IncJobsReordered()
	return job, nil
}

func matchesSearch(job Job, search string) bool {
	if strings.Contains(strings.ToLower(job.Title), search) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// Slugify lowercases the title and collapses non-alphanumeric runs into
// single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

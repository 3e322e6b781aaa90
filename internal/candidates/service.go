package candidates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/internal/extract"
	"talentflow-backend/internal/shared/metrics"
	"talentflow-backend/internal/shared/storage/object"
	"talentflow-backend/internal/shared/telemetry"
	"talentflow-backend/internal/timeline"
)

// TimelineLog is the slice of the timeline service candidates depend on.
type TimelineLog interface {
	Record(ctx context.Context, candidateID, entryType, fromStage, toStage, description string) (timeline.Entry, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]timeline.Entry, error)
}

// Service contains business logic for candidates. Stage transitions are
// the only mutation with a side effect: an immutable timeline entry.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Timeline TimelineLog
}

// ListParams filters and paginates the candidate list.
type ListParams struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// ListResult is one page of candidates.
type ListResult struct {
	Data       []Candidate
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// CreateInput carries the fields accepted on candidate creation.
type CreateInput struct {
	Name  string
	Email string
	Phone string
	Stage string
	JobID string
}

// UpdateInput carries a partial candidate update; nil fields are left
// untouched.
type UpdateInput struct {
	Name  *string
	Email *string
	Phone *string
	Stage *string
	JobID *string
}

// List returns a page of candidates. Search matches name, email, or
// extracted resume text case-insensitively.
func (s *Service) List(ctx context.Context, params ListParams) (ListResult, error) {
	if params.Stage != "" && !ValidStage(params.Stage) {
		return ListResult{}, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, params.Stage)
	}

	all, err := s.Repo.List(ctx, params.Stage)
	if err != nil {
		return ListResult{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		filtered := all[:0]
		for _, candidate := range all {
			if matchesSearch(candidate, search) {
				filtered = append(filtered, candidate)
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
		size = 50
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

// Create validates the input and stores a new candidate.
func (s *Service) Create(ctx context.Context, input CreateInput) (Candidate, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	jobID := strings.TrimSpace(input.JobID)
	if name == "" {
		return Candidate{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return Candidate{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if jobID == "" {
		return Candidate{}, fmt.Errorf("%w: jobId is required", ErrInvalidInput)
	}

	stage := input.Stage
	if stage == "" {
		stage = StageApplied
	}
	if !ValidStage(stage) {
		return Candidate{}, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, stage)
	}

	now := time.Now().UTC()
	candidate := Candidate{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     input.Phone,
		Stage:     stage,
		JobID:     jobID,
		Notes:     []Note{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, id string) (Candidate, error) {
	if strings.TrimSpace(id) == "" {
		return Candidate{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// Update merges the provided fields without side effects.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Candidate, error) {
	candidate, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	if err := applyUpdate(&candidate, input); err != nil {
		return Candidate{}, err
	}
	candidate.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// Patch merges the provided fields; when the stage changes it first
// appends a stage_change timeline entry, then persists the update.
func (s *Service) Patch(ctx context.Context, id string, input UpdateInput) (Candidate, error) {
	candidate, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}

	prevStage := candidate.Stage
	if err := applyUpdate(&candidate, input); err != nil {
		return Candidate{}, err
	}

	if candidate.Stage != prevStage {
		description := fmt.Sprintf("Moved from %s to %s", prevStage, candidate.Stage)
		if _, err := s.Timeline.Record(ctx, id, timeline.TypeStageChange, prevStage, candidate.Stage, description); err != nil {
			return Candidate{}, err
		}
		metrics.IncStageChanges()
	}

	candidate.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// Delete removes a candidate. Timeline entries are independently
// lifecycled and stay behind.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// AddNote appends a note to the candidate and records a note_added
// timeline entry.
func (s *Service) AddNote(ctx context.Context, id, content, authorID, authorName string, mentions []string) (Candidate, error) {
	if strings.TrimSpace(content) == "" {
		return Candidate{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	candidate, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}

	note := Note{
		ID:         uuid.NewString(),
		Content:    content,
		AuthorID:   authorID,
		AuthorName: authorName,
		Mentions:   mentions,
		CreatedAt:  time.Now().UTC(),
	}
	if note.Mentions == nil {
		note.Mentions = []string{}
	}
	candidate.Notes = append(candidate.Notes, note)
	candidate.UpdatedAt = note.CreatedAt

	if err := s.Repo.Update(ctx, candidate); err != nil {
		return Candidate{}, err
	}

	description := "Note added"
	if authorName != "" {
		description = fmt.Sprintf("Note added by %s", authorName)
	}
	if _, err := s.Timeline.Record(ctx, id, timeline.TypeNoteAdded, "", "", description); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// UploadResume stores the file and, for PDF/DOCX payloads, extracts plain
// text so candidate search can match resume contents. Other formats are
// stored opaquely.
func (s *Service) UploadResume(ctx context.Context, id, fileName string, r io.Reader) (Candidate, error) {
	candidate, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Candidate{}, err
	}
	if len(data) == 0 {
		return Candidate{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, id, fileName, bytes.NewReader(data))
	if err != nil {
		return Candidate{}, err
	}

	candidate.ResumeKey = storageKey
	text, err := extract.Text(ctx, data, mimeType, fileName)
	switch {
	case err == nil:
		candidate.ResumeText = text
	case errors.Is(err, extract.ErrUnsupported):
		// Opaque formats are stored without searchable text.
	default:
		telemetry.Warn("resume.extract_failed", map[string]any{
			"candidate_id": id,
			"mime_type":    mimeType,
			"error":        err.Error(),
		})
	}

	candidate.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// TimelineEntries returns the candidate's timeline, newest first.
func (s *Service) TimelineEntries(ctx context.Context, id string) ([]timeline.Entry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Timeline.ListByCandidate(ctx, id)
}

func applyUpdate(candidate *Candidate, input UpdateInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		candidate.Name = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		candidate.Email = email
	}
	if input.Phone != nil {
		candidate.Phone = *input.Phone
	}
	if input.Stage != nil {
		if !ValidStage(*input.Stage) {
			return fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, *input.Stage)
		}
		candidate.Stage = *input.Stage
	}
	if input.JobID != nil {
		jobID := strings.TrimSpace(*input.JobID)
		if jobID == "" {
			return fmt.Errorf("%w: jobId cannot be empty", ErrInvalidInput)
		}
		candidate.JobID = jobID
	}
	return nil
}

func matchesSearch(candidate Candidate, search string) bool {
	if strings.Contains(strings.ToLower(candidate.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(candidate.Email), search) {
		return true
	}
	return candidate.ResumeText != "" && strings.Contains(strings.ToLower(candidate.ResumeText), search)
}

package responses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentflow-backend/internal/assessments"
	"talentflow-backend/internal/shared/metrics"
	"talentflow-backend/internal/timeline"
)

// PreviewCandidateID marks submissions made from the form preview.
// They are validated and stored but never touch a candidate timeline.
const PreviewCandidateID = "candidate-temp"

// AssessmentSource is the slice of the assessments service responses
// depend on.
type AssessmentSource interface {
	Get(ctx context.Context, id string) (assessments.Assessment, error)
}

// TimelineLog records candidate history entries.
type TimelineLog interface {
	Record(ctx context.Context, candidateID, entryType, fromStage, toStage, description string) (timeline.Entry, error)
}

// Service contains business logic for assessment responses.
type Service struct {
	Repo        Repo
	Assessments AssessmentSource
	Timeline    TimelineLog
}

// SubmitInput carries a submission or draft save.
type SubmitInput struct {
	AssessmentID string
	CandidateID  string
	Responses    map[string]assessments.Answer
}

// Submit validates the answers against the assessment definition and
// finalizes the candidate's open response, creating one if needed. The
// stored answers are only trusted after this re-validation. A completed
// submission appends an assessment_completed timeline entry.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Response, error) {
	a, err := s.load(ctx, input)
	if err != nil {
		return Response{}, err
	}

	if fields := assessments.ValidateResponses(a, input.Responses); len(fields) > 0 {
		metrics.IncSubmissionsRejected()
		return Response{}, &ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	resp, err := s.upsert(ctx, input, now)
	if err != nil {
		return Response{}, err
	}

	resp.CompletedAt = &now
	resp.UpdatedAt = now
	if err := s.Repo.Update(ctx, resp); err != nil {
		return Response{}, err
	}
	metrics.IncSubmissionsAccepted()

	if input.CandidateID != PreviewCandidateID {
		description := fmt.Sprintf("Completed assessment: %s", a.Title)
		if _, err := s.Timeline.Record(ctx, input.CandidateID, timeline.TypeAssessmentCompleted, "", "", description); err != nil {
			return Response{}, err
		}
	}
	return resp, nil
}

// Save stores the answers as a draft without validation or completion.
func (s *Service) Save(ctx context.Context, input SubmitInput) (Response, error) {
	if _, err := s.load(ctx, input); err != nil {
		return Response{}, err
	}

	now := time.Now().UTC()
	resp, err := s.upsert(ctx, input, now)
	if err != nil {
		return Response{}, err
	}
	resp.UpdatedAt = now
	if err := s.Repo.Update(ctx, resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// Get returns a response by ID.
func (s *Service) Get(ctx context.Context, id string) (Response, error) {
	if strings.TrimSpace(id) == "" {
		return Response{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns responses filtered by assessment and candidate.
func (s *Service) List(ctx context.Context, assessmentID, candidateID string) ([]Response, error) {
	return s.Repo.List(ctx, assessmentID, candidateID)
}

// Delete removes a response.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

func (s *Service) load(ctx context.Context, input SubmitInput) (assessments.Assessment, error) {
	if strings.TrimSpace(input.AssessmentID) == "" {
		return assessments.Assessment{}, fmt.Errorf("%w: assessmentId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.CandidateID) == "" {
		return assessments.Assessment{}, fmt.Errorf("%w: candidateId is required", ErrInvalidInput)
	}

	a, err := s.Assessments.Get(ctx, input.AssessmentID)
	if err != nil {
		if errors.Is(err, assessments.ErrNotFound) {
			return assessments.Assessment{}, fmt.Errorf("%w: assessment %q does not exist", ErrInvalidInput, input.AssessmentID)
		}
		return assessments.Assessment{}, err
	}
	return a, nil
}

// upsert writes the answers onto the pair's open response, creating one
// when none exists. Completed responses are never reopened.
func (s *Service) upsert(ctx context.Context, input SubmitInput, now time.Time) (Response, error) {
	answers := input.Responses
	if answers == nil {
		answers = map[string]assessments.Answer{}
	}

	resp, err := s.Repo.FindOpen(ctx, input.AssessmentID, input.CandidateID)
	switch {
	case err == nil:
		resp.Responses = answers
		return resp, nil
	case errors.Is(err, ErrNotFound):
		resp = Response{
			ID:           uuid.NewString(),
			AssessmentID: input.AssessmentID,
			CandidateID:  input.CandidateID,
			Responses:    answers,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Repo.Create(ctx, resp); err != nil {
			return Response{}, err
		}
		return resp, nil
	default:
		return Response{}, err
	}
}

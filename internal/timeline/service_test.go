package timeline_test

import (
	"context"
	"errors"
	"testing"

	"talentflow-backend/internal/timeline"
)

func TestRecordAndListNewestFirst(t *testing.T) {
	svc := timeline.NewService(timeline.NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.Record(ctx, "cand-1", timeline.TypeStageChange, "applied", "screen", "Moved from applied to screen")
	if err != nil {
		t.Fatalf("record first: %v", err)
	}
	second, err := svc.Record(ctx, "cand-1", timeline.TypeNoteAdded, "", "", "Note added by Dana")
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if _, err := svc.Record(ctx, "cand-2", timeline.TypeStageChange, "applied", "tech", "Moved from applied to tech"); err != nil {
		t.Fatalf("record other candidate: %v", err)
	}

	entries, err := svc.ListByCandidate(ctx, "cand-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for cand-1, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Fatalf("expected newest first ordering, got %+v", entries)
	}
}

func TestListAllWhenCandidateEmpty(t *testing.T) {
	svc := timeline.NewService(timeline.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Record(ctx, "cand-1", timeline.TypeNoteAdded, "", "", "Note added"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, "cand-2", timeline.TypeNoteAdded, "", "", "Note added"); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := svc.ListByCandidate(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected all entries, got %d", len(entries))
	}
}

func TestRecordValidation(t *testing.T) {
	svc := timeline.NewService(timeline.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Record(ctx, "", timeline.TypeNoteAdded, "", "", "x"); !errors.Is(err, timeline.ErrInvalidInput) {
		t.Fatalf("missing candidate: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Record(ctx, "cand-1", "promotion", "", "", "x"); !errors.Is(err, timeline.ErrInvalidInput) {
		t.Fatalf("unknown type: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Record(ctx, "cand-1", timeline.TypeNoteAdded, "", "", ""); !errors.Is(err, timeline.ErrInvalidInput) {
		t.Fatalf("missing description: expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	svc := timeline.NewService(timeline.NewMemoryRepo())
	ctx := context.Background()

	entry, err := svc.Record(ctx, "cand-1", timeline.TypeNoteAdded, "", "", "Note added")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, entry.ID); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

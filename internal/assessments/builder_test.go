package assessments_test

import (
	"testing"

	"talentflow-backend/internal/assessments"
)

func TestAddSectionAssignsNextOrder(t *testing.T) {
	a := sampleAssessment()
	out := assessments.AddSection(a, assessments.Section{ID: "s-2", Title: "Skills"})

	if len(out.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Sections))
	}
	if out.Sections[1].Order != 2 {
		t.Fatalf("expected order 2, got %d", out.Sections[1].Order)
	}
	if len(a.Sections) != 1 {
		t.Fatalf("input assessment was mutated")
	}
}

func TestRemoveQuestionKeepsSiblingOrders(t *testing.T) {
	a := sampleAssessment()

	out, ok := assessments.RemoveQuestion(a, "s-1", "q-setup")
	if !ok {
		t.Fatalf("expected question to be removed")
	}

	questions := out.Sections[0].Questions
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	// Orders keep their gaps; siblings are never renumbered.
	if questions[0].Order != 1 || questions[1].Order != 3 {
		t.Fatalf("sibling orders changed: %d, %d", questions[0].Order, questions[1].Order)
	}
	if len(a.Sections[0].Questions) != 3 {
		t.Fatalf("input assessment was mutated")
	}
}

func TestAddQuestionAfterRemovalToleratesGaps(t *testing.T) {
	a := sampleAssessment()
	removed, _ := assessments.RemoveQuestion(a, "s-1", "q-setup")

	out, ok := assessments.AddQuestion(removed, "s-1", assessments.Question{
		ID:       "q-new",
		Type:     assessments.TypeShortText,
		Question: "Anything else?",
	})
	if !ok {
		t.Fatalf("expected question to be added")
	}
	questions := out.Sections[0].Questions
	if questions[len(questions)-1].Order != 4 {
		t.Fatalf("expected new question past the max order, got %d", questions[len(questions)-1].Order)
	}
}

func TestUpdateQuestionPreservesOrder(t *testing.T) {
	a := sampleAssessment()

	out, ok := assessments.UpdateQuestion(a, "s-1", assessments.Question{
		ID:       "q-years",
		Type:     assessments.TypeNumeric,
		Question: "How many years of Go experience?",
	})
	if !ok {
		t.Fatalf("expected question to be updated")
	}
	q := out.Sections[0].Questions[2]
	if q.Question != "How many years of Go experience?" {
		t.Fatalf("question text not updated: %q", q.Question)
	}
	if q.Order != 3 {
		t.Fatalf("expected preserved order 3, got %d", q.Order)
	}
}

func TestUpdateSectionKeepsQuestions(t *testing.T) {
	a := sampleAssessment()

	out, ok := assessments.UpdateSection(a, assessments.Section{ID: "s-1", Title: "About you"})
	if !ok {
		t.Fatalf("expected section to be updated")
	}
	if out.Sections[0].Title != "About you" {
		t.Fatalf("title not updated: %q", out.Sections[0].Title)
	}
	if len(out.Sections[0].Questions) != 3 {
		t.Fatalf("questions dropped on section update")
	}
}

func TestRemoveSection(t *testing.T) {
	a := sampleAssessment()

	out, ok := assessments.RemoveSection(a, "s-1")
	if !ok {
		t.Fatalf("expected section to be removed")
	}
	if len(out.Sections) != 0 {
		t.Fatalf("expected empty sections, got %d", len(out.Sections))
	}

	if _, ok := assessments.RemoveSection(a, "missing"); ok {
		t.Fatalf("unknown section must report not found")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := sampleAssessment()
	clone := assessments.Clone(a)

	clone.Sections[0].Questions[0].Options[0] = "Changed"
	if a.Sections[0].Questions[0].Options[0] != "Yes" {
		t.Fatalf("clone shares option storage with the original")
	}

	*clone.Sections[0].Questions[1].Validation.MaxLength = 99
	if *a.Sections[0].Questions[1].Validation.MaxLength == 99 {
		t.Fatalf("clone shares validation storage with the original")
	}
}

package assessments_test

import (
	"testing"

	"talentflow-backend/internal/assessments"
)

func sampleAssessment() assessments.Assessment {
	maxLen := 10
	min := 0.0
	max := 50.0
	return assessments.Assessment{
		ID:    "a-1",
		JobID: "job-1",
		Title: "Screening",
		Sections: []assessments.Section{
			{
				ID:    "s-1",
				Title: "Background",
				Order: 1,
				Questions: []assessments.Question{
					{
						ID:       "q-remote",
						Type:     assessments.TypeSingleChoice,
						Question: "Open to remote work?",
						Required: true,
						Order:    1,
						Options:  []string{"Yes", "No"},
					},
					{
						ID:       "q-setup",
						Type:     assessments.TypeShortText,
						Question: "Describe your setup.",
						Required: true,
						Order:    2,
						Validation: &assessments.Validation{
							MaxLength: &maxLen,
						},
						ConditionalLogic: &assessments.ConditionalLogic{
							DependsOnQuestionID: "q-remote",
							ShowWhen:            assessments.ShowWhenValue("Yes"),
						},
					},
					{
						ID:       "q-years",
						Type:     assessments.TypeNumeric,
						Question: "Years of experience?",
						Required: true,
						Order:    3,
						Validation: &assessments.Validation{
							Min: &min,
							Max: &max,
						},
					},
				},
			},
		},
	}
}

func TestIsVisibleWithoutCondition(t *testing.T) {
	q := assessments.Question{ID: "q", Type: assessments.TypeShortText}
	if !assessments.IsVisible(q, nil) {
		t.Fatalf("unconditional question must be visible")
	}
}

func TestIsVisibleSingleValue(t *testing.T) {
	a := sampleAssessment()
	setup := a.Sections[0].Questions[1]

	cases := []struct {
		name    string
		answers map[string]assessments.Answer
		want    bool
	}{
		{"matching value", map[string]assessments.Answer{"q-remote": assessments.TextAnswer("Yes")}, true},
		{"non-matching value", map[string]assessments.Answer{"q-remote": assessments.TextAnswer("No")}, false},
		{"dependency unanswered", map[string]assessments.Answer{}, false},
		{"list answer never matches", map[string]assessments.Answer{"q-remote": assessments.ChoicesAnswer("Yes")}, false},
	}
	for _, tc := range cases {
		if got := assessments.IsVisible(setup, tc.answers); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsVisibleAnyOf(t *testing.T) {
	q := assessments.Question{
		ID:   "q",
		Type: assessments.TypeShortText,
		ConditionalLogic: &assessments.ConditionalLogic{
			DependsOnQuestionID: "q-dep",
			ShowWhen:            assessments.ShowWhenAnyOf("a", "b"),
		},
	}
	if !assessments.IsVisible(q, map[string]assessments.Answer{"q-dep": assessments.TextAnswer("b")}) {
		t.Fatalf("member value should show the question")
	}
	if assessments.IsVisible(q, map[string]assessments.Answer{"q-dep": assessments.TextAnswer("c")}) {
		t.Fatalf("non-member value should hide the question")
	}
}

func TestValidateResponsesAccepts(t *testing.T) {
	a := sampleAssessment()
	answers := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("Yes"),
		"q-setup":  assessments.TextAnswer("desk"),
		"q-years":  assessments.NumberAnswer(5),
	}
	if errs := assessments.ValidateResponses(a, answers); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateResponsesSkipsHiddenRequired(t *testing.T) {
	a := sampleAssessment()

	// q-setup is required but hidden when q-remote is No.
	answers := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("No"),
		"q-years":  assessments.NumberAnswer(5),
	}
	if errs := assessments.ValidateResponses(a, answers); len(errs) != 0 {
		t.Fatalf("hidden required question must not fail validation, got %+v", errs)
	}
}

func TestValidateResponsesRequiredMissing(t *testing.T) {
	a := sampleAssessment()
	answers := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("Yes"),
		"q-years":  assessments.NumberAnswer(5),
	}
	errs := assessments.ValidateResponses(a, answers)
	if len(errs) != 1 || errs[0].QuestionID != "q-setup" {
		t.Fatalf("expected q-setup required error, got %+v", errs)
	}
}

func TestValidateResponsesConstraints(t *testing.T) {
	a := sampleAssessment()

	tooLong := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("Yes"),
		"q-setup":  assessments.TextAnswer("this answer is way too long"),
		"q-years":  assessments.NumberAnswer(5),
	}
	errs := assessments.ValidateResponses(a, tooLong)
	if len(errs) != 1 || errs[0].QuestionID != "q-setup" {
		t.Fatalf("expected maxLength error for q-setup, got %+v", errs)
	}

	outOfRange := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("No"),
		"q-years":  assessments.NumberAnswer(99),
	}
	errs = assessments.ValidateResponses(a, outOfRange)
	if len(errs) != 1 || errs[0].QuestionID != "q-years" {
		t.Fatalf("expected range error for q-years, got %+v", errs)
	}

	badOption := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("Maybe"),
		"q-years":  assessments.NumberAnswer(5),
	}
	errs = assessments.ValidateResponses(a, badOption)
	if len(errs) != 1 || errs[0].QuestionID != "q-remote" {
		t.Fatalf("expected option error for q-remote, got %+v", errs)
	}
}

func TestValidateResponsesWrongShape(t *testing.T) {
	a := sampleAssessment()
	answers := map[string]assessments.Answer{
		"q-remote": assessments.TextAnswer("No"),
		"q-years":  assessments.TextAnswer("five"),
	}
	errs := assessments.ValidateResponses(a, answers)
	if len(errs) != 1 || errs[0].QuestionID != "q-years" {
		t.Fatalf("expected shape error for q-years, got %+v", errs)
	}
}

func TestValidateDefinitionForwardOnlyDependency(t *testing.T) {
	a := sampleAssessment()
	// Point the first question at the later one.
	a.Sections[0].Questions[0].ConditionalLogic = &assessments.ConditionalLogic{
		DependsOnQuestionID: "q-years",
		ShowWhen:            assessments.ShowWhenValue("5"),
	}
	if err := assessments.ValidateDefinition(a); err == nil {
		t.Fatalf("expected backward dependency to be rejected")
	}
}

func TestValidateDefinitionChoiceNeedsOptions(t *testing.T) {
	a := sampleAssessment()
	a.Sections[0].Questions[0].Options = nil
	if err := assessments.ValidateDefinition(a); err == nil {
		t.Fatalf("expected choice question without options to be rejected")
	}
}

package assessments

import "fmt"

// FieldError describes a single question that failed response validation.
type FieldError struct {
	QuestionID string `json:"questionId"`
	Message    string `json:"message"`
}

// IsVisible reports whether a question should be shown given the current
// answers. Questions without conditional logic are always visible. Only
// single-valued answers can satisfy a condition; multi-choice answers to
// the dependency never match.
func IsVisible(q Question, responses map[string]Answer) bool {
	if q.ConditionalLogic == nil || q.ConditionalLogic.ShowWhen.IsZero() {
		return true
	}
	answer, ok := responses[q.ConditionalLogic.DependsOnQuestionID]
	if !ok {
		return false
	}
	value, ok := answer.AsText()
	if !ok {
		return false
	}
	return q.ConditionalLogic.ShowWhen.Matches(value)
}

// ValidateResponses checks the answers against the assessment definition.
// Hidden questions are skipped entirely, including their required flag.
// The returned slice is empty when the submission is valid.
func ValidateResponses(a Assessment, responses map[string]Answer) []FieldError {
	var errs []FieldError
	for _, section := range a.Sections {
		for _, q := range section.Questions {
			if !IsVisible(q, responses) {
				continue
			}
			answer, ok := responses[q.ID]
			if !ok || answer.IsEmpty() {
				if q.Required {
					errs = append(errs, FieldError{QuestionID: q.ID, Message: "This field is required"})
				}
				continue
			}
			if fe, ok := validateAnswer(q, answer); !ok {
				errs = append(errs, fe)
			}
		}
	}
	return errs
}

func validateAnswer(q Question, answer Answer) (FieldError, bool) {
	switch q.Type {
	case TypeShortText, TypeLongText:
		value, ok := answer.AsText()
		if !ok {
			return FieldError{QuestionID: q.ID, Message: "Expected a text answer"}, false
		}
		if q.Validation != nil && q.Validation.MaxLength != nil && len(value) > *q.Validation.MaxLength {
			return FieldError{
				QuestionID: q.ID,
				Message:    fmt.Sprintf("Maximum length is %d characters", *q.Validation.MaxLength),
			}, false
		}
	case TypeNumeric:
		value, ok := answer.AsNumber()
		if !ok {
			return FieldError{QuestionID: q.ID, Message: "Expected a numeric answer"}, false
		}
		if q.Validation != nil {
			if q.Validation.Min != nil && value < *q.Validation.Min {
				return FieldError{
					QuestionID: q.ID,
					Message:    fmt.Sprintf("Minimum value is %v", *q.Validation.Min),
				}, false
			}
			if q.Validation.Max != nil && value > *q.Validation.Max {
				return FieldError{
					QuestionID: q.ID,
					Message:    fmt.Sprintf("Maximum value is %v", *q.Validation.Max),
				}, false
			}
		}
	case TypeSingleChoice:
		value, ok := answer.AsText()
		if !ok {
			return FieldError{QuestionID: q.ID, Message: "Expected a single selection"}, false
		}
		if !containsOption(q.Options, value) {
			return FieldError{QuestionID: q.ID, Message: "Selection is not one of the available options"}, false
		}
	case TypeMultiChoice:
		values, ok := answer.AsChoices()
		if !ok {
			return FieldError{QuestionID: q.ID, Message: "Expected a list of selections"}, false
		}
		for _, v := range values {
			if !containsOption(q.Options, v) {
				return FieldError{QuestionID: q.ID, Message: "Selection is not one of the available options"}, false
			}
		}
	case TypeFileUpload:
		if _, ok := answer.AsFile(); !ok {
			return FieldError{QuestionID: q.ID, Message: "Expected a file reference"}, false
		}
	}
	return FieldError{}, true
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// ValidateDefinition checks the structural rules of an assessment:
// non-empty titles, known question types, options on choice questions,
// and conditional dependencies that reference an earlier question.
func ValidateDefinition(a Assessment) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	seen := make(map[string]bool)
	for _, section := range a.Sections {
		if section.Title == "" {
			return fmt.Errorf("%w: section title is required", ErrInvalidInput)
		}
		for _, q := range section.Questions {
			if q.ID == "" {
				return fmt.Errorf("%w: question id is required", ErrInvalidInput)
			}
			if seen[q.ID] {
				return fmt.Errorf("%w: duplicate question id %q", ErrInvalidInput, q.ID)
			}
			if q.Question == "" {
				return fmt.Errorf("%w: question text is required", ErrInvalidInput)
			}
			if !ValidQuestionType(q.Type) {
				return fmt.Errorf("%w: unknown question type %q", ErrInvalidInput, q.Type)
			}
			if isChoiceType(q.Type) && len(q.Options) == 0 {
				return fmt.Errorf("%w: question %q needs at least one option", ErrInvalidInput, q.ID)
			}
			if q.ConditionalLogic != nil {
				dep := q.ConditionalLogic.DependsOnQuestionID
				if dep == "" || !seen[dep] {
					return fmt.Errorf("%w: question %q depends on %q which does not appear earlier in the form", ErrInvalidInput, q.ID, dep)
				}
			}
			seen[q.ID] = true
		}
	}
	return nil
}

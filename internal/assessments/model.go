package assessments

import (
	"encoding/json"
	"fmt"
	"time"
)

// Question types.
const (
	TypeSingleChoice = "single-choice"
	TypeMultiChoice  = "multi-choice"
	TypeShortText    = "short-text"
	TypeLongText     = "long-text"
	TypeNumeric      = "numeric"
	TypeFileUpload   = "file-upload"
)

// Assessment is a per-job questionnaire of ordered sections and questions.
// At most one assessment exists per job.
type Assessment struct {
	ID          string
	JobID       string
	Title       string
	Description string
	Sections    []Section
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Section groups ordered questions. The JSON tags double as the JSONB
// storage shape.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	Order       int        `json:"order"`
}

// Question is a single form field.
type Question struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	Question         string            `json:"question"`
	Description      string            `json:"description,omitempty"`
	Required         bool              `json:"required"`
	Order            int               `json:"order"`
	Options          []string          `json:"options,omitempty"`
	Validation       *Validation       `json:"validation,omitempty"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic,omitempty"`
}

// Validation carries optional per-question constraints.
type Validation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
}

// ConditionalLogic makes a question's visibility depend on another
// question's answer. The dependency must appear earlier in the form.
type ConditionalLogic struct {
	DependsOnQuestionID string   `json:"dependsOnQuestionId"`
	ShowWhen            ShowWhen `json:"showWhen"`
}

// ShowWhen is either a single value or a set of values; the question is
// visible when the dependency's answer matches (single) or is a member
// (set).
type ShowWhen struct {
	values []string
	single bool
}

// ShowWhenValue builds a single-value ShowWhen.
func ShowWhenValue(v string) ShowWhen {
	return ShowWhen{values: []string{v}, single: true}
}

// ShowWhenAnyOf builds a set-membership ShowWhen.
func ShowWhenAnyOf(values ...string) ShowWhen {
	return ShowWhen{values: append([]string(nil), values...)}
}

// Matches reports whether the answer value satisfies the condition.
func (w ShowWhen) Matches(answer string) bool {
	for _, v := range w.values {
		if v == answer {
			return true
		}
	}
	return false
}

// IsZero reports whether no condition values are set.
func (w ShowWhen) IsZero() bool {
	return len(w.values) == 0
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (w *ShowWhen) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*w = ShowWhenValue(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*w = ShowWhen{values: many}
		return nil
	}
	return fmt.Errorf("showWhen must be a string or an array of strings")
}

// MarshalJSON mirrors the accepted input shapes.
func (w ShowWhen) MarshalJSON() ([]byte, error) {
	if w.single && len(w.values) == 1 {
		return json.Marshal(w.values[0])
	}
	if w.values == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(w.values)
}

// ValidQuestionType reports whether t is a known question type.
func ValidQuestionType(t string) bool {
	switch t {
	case TypeSingleChoice, TypeMultiChoice, TypeShortText, TypeLongText, TypeNumeric, TypeFileUpload:
		return true
	default:
		return false
	}
}

func isChoiceType(t string) bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

package assessments

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FileRef is the opaque reference stored for file-upload answers.
type FileRef struct {
	Name string `json:"name"`
	Key  string `json:"key,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// Answer is the tagged union of per-question answer shapes: text (also
// single-choice), number, string set (multi-choice), or file reference.
// The wire shape is validated against the referenced question's type by
// ValidateResponses, not at decode time.
type Answer struct {
	kind    answerKind
	text    string
	number  float64
	choices []string
	file    FileRef
}

type answerKind int

const (
	kindEmpty answerKind = iota
	kindText
	kindNumber
	kindChoices
	kindFile
)

// TextAnswer builds a text (or single-choice) answer.
func TextAnswer(s string) Answer {
	return Answer{kind: kindText, text: s}
}

// NumberAnswer builds a numeric answer.
func NumberAnswer(v float64) Answer {
	return Answer{kind: kindNumber, number: v}
}

// ChoicesAnswer builds a multi-choice answer.
func ChoicesAnswer(values ...string) Answer {
	return Answer{kind: kindChoices, choices: append([]string(nil), values...)}
}

// FileAnswer builds a file-upload answer.
func FileAnswer(ref FileRef) Answer {
	return Answer{kind: kindFile, file: ref}
}

// AsText returns the string value for text and single-choice answers.
func (a Answer) AsText() (string, bool) {
	if a.kind != kindText {
		return "", false
	}
	return a.text, true
}

// AsNumber returns the numeric value.
func (a Answer) AsNumber() (float64, bool) {
	if a.kind != kindNumber {
		return 0, false
	}
	return a.number, true
}

// AsChoices returns the selected values of a multi-choice answer.
func (a Answer) AsChoices() ([]string, bool) {
	if a.kind != kindChoices {
		return nil, false
	}
	return a.choices, true
}

// AsFile returns the file reference of a file-upload answer.
func (a Answer) AsFile() (FileRef, bool) {
	if a.kind != kindFile {
		return FileRef{}, false
	}
	return a.file, true
}

// IsEmpty reports whether the answer carries no usable value. A numeric
// answer is never empty; an empty string, empty selection, or missing
// file reference is.
func (a Answer) IsEmpty() bool {
	switch a.kind {
	case kindEmpty:
		return true
	case kindText:
		return strings.TrimSpace(a.text) == ""
	case kindChoices:
		return len(a.choices) == 0
	case kindFile:
		return a.file.Name == "" && a.file.Key == ""
	default:
		return false
	}
}

// UnmarshalJSON decodes the union by wire shape: string, number, array
// of strings, object (file reference), or null.
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Answer{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = NumberAnswer(n)
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*a = Answer{kind: kindChoices, choices: values}
		return nil
	}
	var ref FileRef
	if err := json.Unmarshal(data, &ref); err == nil {
		*a = FileAnswer(ref)
		return nil
	}
	return fmt.Errorf("unsupported answer shape: %s", trimmed)
}

// MarshalJSON emits the underlying wire shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case kindText:
		return json.Marshal(a.text)
	case kindNumber:
		return json.Marshal(a.number)
	case kindChoices:
		if a.choices == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.choices)
	case kindFile:
		return json.Marshal(a.file)
	default:
		return []byte("null"), nil
	}
}

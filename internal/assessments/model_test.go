package assessments_test

import (
	"encoding/json"
	"testing"

	"talentflow-backend/internal/assessments"
)

func TestShowWhenAcceptsStringOrList(t *testing.T) {
	var single assessments.ConditionalLogic
	if err := json.Unmarshal([]byte(`{"dependsOnQuestionId":"q-1","showWhen":"Yes"}`), &single); err != nil {
		t.Fatalf("unmarshal single: %v", err)
	}
	if !single.ShowWhen.Matches("Yes") || single.ShowWhen.Matches("No") {
		t.Fatalf("single-value condition mismatch")
	}

	var many assessments.ConditionalLogic
	if err := json.Unmarshal([]byte(`{"dependsOnQuestionId":"q-1","showWhen":["a","b"]}`), &many); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if !many.ShowWhen.Matches("b") || many.ShowWhen.Matches("c") {
		t.Fatalf("list condition mismatch")
	}

	var bad assessments.ConditionalLogic
	if err := json.Unmarshal([]byte(`{"showWhen":42}`), &bad); err == nil {
		t.Fatalf("expected numeric showWhen to be rejected")
	}
}

func TestAnswerDecodesByShape(t *testing.T) {
	var answers map[string]assessments.Answer
	payload := `{
		"q-text": "hello",
		"q-num": 4.5,
		"q-multi": ["a","b"],
		"q-file": {"name":"cv.pdf","key":"k1","size":10},
		"q-null": null
	}`
	if err := json.Unmarshal([]byte(payload), &answers); err != nil {
		t.Fatalf("unmarshal answers: %v", err)
	}

	if v, ok := answers["q-text"].AsText(); !ok || v != "hello" {
		t.Fatalf("text answer: %v %v", v, ok)
	}
	if v, ok := answers["q-num"].AsNumber(); !ok || v != 4.5 {
		t.Fatalf("number answer: %v %v", v, ok)
	}
	if v, ok := answers["q-multi"].AsChoices(); !ok || len(v) != 2 {
		t.Fatalf("choices answer: %v %v", v, ok)
	}
	if f, ok := answers["q-file"].AsFile(); !ok || f.Name != "cv.pdf" {
		t.Fatalf("file answer: %+v %v", f, ok)
	}
	if !answers["q-null"].IsEmpty() {
		t.Fatalf("null answer must be empty")
	}
}

func TestAnswerRoundTripsWireShape(t *testing.T) {
	in := map[string]assessments.Answer{
		"a": assessments.TextAnswer("x"),
		"b": assessments.NumberAnswer(3),
		"c": assessments.ChoicesAnswer("one", "two"),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]assessments.Answer
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, _ := out["a"].AsText(); v != "x" {
		t.Fatalf("text did not round-trip: %q", v)
	}
	if v, _ := out["b"].AsNumber(); v != 3 {
		t.Fatalf("number did not round-trip: %v", v)
	}
	if v, _ := out["c"].AsChoices(); len(v) != 2 || v[0] != "one" {
		t.Fatalf("choices did not round-trip: %v", v)
	}
}

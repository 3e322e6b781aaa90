package responses_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/bootstrap"
	"talentflow-backend/internal/shared/config"
)

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func seedAssessmentHTTP(t *testing.T, router *gin.Engine) string {
	t.Helper()
	resp := postJSON(t, router, "/api/assessments", map[string]any{
		"jobId": "job-1",
		"title": "Screening",
		"sections": []map[string]any{
			{
				"title": "Background",
				"questions": []map[string]any{
					{
						"id":       "q-remote",
						"type":     "single-choice",
						"question": "Open to remote work?",
						"required": true,
						"options":  []string{"Yes", "No"},
					},
				},
			},
		},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("seed assessment: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode assessment: %v", err)
	}
	return created.ID
}

func TestSubmitResponseEndToEnd(t *testing.T) {
	app := buildApp(t)
	assessmentID := seedAssessmentHTTP(t, app.Router)

	resp := postJSON(t, app.Router, "/api/assessment-responses", map[string]any{
		"assessmentId": assessmentID,
		"candidateId":  "cand-1",
		"responses":    map[string]any{"q-remote": "Yes"},
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		ID        string `json:"id"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Completed {
		t.Fatalf("expected completed submission")
	}

	// The submission shows up on the candidate's timeline.
	reqTimeline := httptest.NewRequest(http.MethodGet, "/api/candidate-timeline?candidateId=cand-1", nil)
	respTimeline := httptest.NewRecorder()
	app.Router.ServeHTTP(respTimeline, reqTimeline)
	if respTimeline.Code != http.StatusOK {
		t.Fatalf("timeline: expected 200, got %d", respTimeline.Code)
	}
	var entries []struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(respTimeline.Body).Decode(&entries); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "assessment_completed" {
		t.Fatalf("expected assessment_completed entry, got %+v", entries)
	}
}

func TestSubmitResponseValidationFailureReturnsFieldDetails(t *testing.T) {
	app := buildApp(t)
	assessmentID := seedAssessmentHTTP(t, app.Router)

	resp := postJSON(t, app.Router, "/api/assessment-responses", map[string]any{
		"assessmentId": assessmentID,
		"candidateId":  "cand-1",
		"responses":    map[string]any{},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details []struct {
				QuestionID string `json:"questionId"`
				Message    string `json:"message"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Code)
	}
	if len(body.Error.Details) != 1 || body.Error.Details[0].QuestionID != "q-remote" {
		t.Fatalf("expected q-remote detail, got %+v", body.Error.Details)
	}
}

func TestSubmitDraftDoesNotComplete(t *testing.T) {
	app := buildApp(t)
	assessmentID := seedAssessmentHTTP(t, app.Router)

	resp := postJSON(t, app.Router, "/api/assessment-responses", map[string]any{
		"assessmentId": assessmentID,
		"candidateId":  "cand-1",
		"responses":    map[string]any{},
		"complete":     false,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("draft save: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Completed {
		t.Fatalf("draft must not be completed")
	}
}

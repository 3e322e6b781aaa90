package assessments_test

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

func newTestRouter(t *testing.T) *gin.Engine {
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
	return app.Router
}

func TestAssessmentByJobReturnsNullWhenMissing(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/by-job/job-without-form", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := bytes.TrimSpace(resp.Body.Bytes()); string(body) != "null" {
		t.Fatalf("expected literal null body, got %q", body)
	}
}

func TestAssessmentUpsertByJobRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
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
					{
						"id":       "q-setup",
						"type":     "short-text",
						"question": "Describe your setup.",
						"conditionalLogic": map[string]any{
							"dependsOnQuestionId": "q-remote",
							"showWhen":            "Yes",
						},
					},
				},
			},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/assessments/by-job/job-1", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("upsert: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID    string `json:"id"`
		JobID string `json:"jobId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upsert response: %v", err)
	}
	if created.JobID != "job-1" || created.ID == "" {
		t.Fatalf("unexpected upsert response: %+v", created)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/assessments/by-job/job-1", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("get by job: expected 200, got %d", respGet.Code)
	}
	var fetched struct {
		ID       string `json:"id"`
		Sections []struct {
			Questions []struct {
				ID               string `json:"id"`
				ConditionalLogic *struct {
					ShowWhen json.RawMessage `json:"showWhen"`
				} `json:"conditionalLogic"`
			} `json:"questions"`
		} `json:"sections"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected the upserted assessment, got %s", fetched.ID)
	}
	logic := fetched.Sections[0].Questions[1].ConditionalLogic
	if logic == nil || string(logic.ShowWhen) != `"Yes"` {
		t.Fatalf("single-value showWhen must round-trip as a string, got %v", logic)
	}
}

func TestAssessmentRejectsBackwardDependency(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"jobId": "job-1",
		"title": "Broken",
		"sections": []map[string]any{
			{
				"title": "One",
				"questions": []map[string]any{
					{
						"id":       "q-a",
						"type":     "short-text",
						"question": "First?",
						"conditionalLogic": map[string]any{
							"dependsOnQuestionId": "q-b",
							"showWhen":            "x",
						},
					},
					{
						"id":       "q-b",
						"type":     "short-text",
						"question": "Second?",
					},
				},
			},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

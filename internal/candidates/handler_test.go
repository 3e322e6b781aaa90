package candidates_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func createCandidateHTTP(t *testing.T, router *gin.Engine) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"name":  "Jordan Smith",
		"email": "jordan.smith@example.com",
		"jobId": "job-1",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/candidates", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("create candidate: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return created.ID
}

func TestCandidateStageChangeShowsOnTimeline(t *testing.T) {
	router := newTestRouter(t)
	id := createCandidateHTTP(t, router)

	payload := []byte(`{"stage":"screen"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/candidates/"+id, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqTimeline := httptest.NewRequest(http.MethodGet, "/api/candidates/"+id+"/timeline", nil)
	respTimeline := httptest.NewRecorder()
	router.ServeHTTP(respTimeline, reqTimeline)
	if respTimeline.Code != http.StatusOK {
		t.Fatalf("timeline: expected 200, got %d", respTimeline.Code)
	}

	var entries []struct {
		Type        string `json:"type"`
		FromStage   string `json:"fromStage"`
		ToStage     string `json:"toStage"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(respTimeline.Body).Decode(&entries); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 timeline entry, got %d", len(entries))
	}
	if entries[0].Type != "stage_change" || entries[0].FromStage != "applied" || entries[0].ToStage != "screen" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestCandidateResumeUpload(t *testing.T) {
	router := newTestRouter(t)
	id := createCandidateHTTP(t, router)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte("plain text resume")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+id+"/resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var uploaded struct {
		Resume string `json:"resume"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploaded.Resume == "" {
		t.Fatalf("expected stored resume key")
	}
}

func TestCandidateAddNoteEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := createCandidateHTTP(t, router)

	payload := []byte(`{"content":"Great phone screen","authorId":"u-1","authorName":"Dana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+id+"/notes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("add note: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated struct {
		Notes []struct {
			Content string `json:"content"`
		} `json:"notes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode note response: %v", err)
	}
	if len(updated.Notes) != 1 || updated.Notes[0].Content != "Great phone screen" {
		t.Fatalf("unexpected notes %+v", updated.Notes)
	}
}

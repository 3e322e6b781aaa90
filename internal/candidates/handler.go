package candidates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/shared/server/respond"
	"talentflow-backend/internal/timeline"
)

const maxResumeSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidates", h.list)
	rg.POST("/candidates", h.create)
	rg.GET("/candidates/:id", h.get)
	rg.GET("/candidates/:id/timeline", h.timeline)
	rg.PUT("/candidates/:id", h.update)
	rg.PATCH("/candidates/:id", h.patch)
	rg.DELETE("/candidates/:id", h.delete)
	rg.POST("/candidates/:id/notes", h.addNote)
	rg.POST("/candidates/:id/resume", h.uploadResume)
}

func (h *Handler) list(c *gin.Context) {
	params := ListParams{
		Search: c.Query("search"),
		Stage:  c.Query("stage"),
		Page:   intQuery(c, "page", 1),
	}
	params.PageSize = intQuery(c, "pageSize", 50)

	result, err := h.Svc.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err, "failed to list candidates")
		return
	}
	respond.OK(c, toListResponse(result))
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Stage string `json:"stage"`
	JobID string `json:"jobId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	candidate, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Stage: req.Stage,
		JobID: req.JobID,
	})
	if err != nil {
		h.fail(c, err, "failed to create candidate")
		return
	}
	c.Set("candidateId", candidate.ID)
	respond.JSON(c, http.StatusCreated, toResponse(candidate))
}

func (h *Handler) get(c *gin.Context) {
	candidate, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch candidate")
		return
	}
	respond.OK(c, toResponse(candidate))
}

func (h *Handler) timeline(c *gin.Context) {
	entries, err := h.Svc.TimelineEntries(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch timeline")
		return
	}
	respond.OK(c, timeline.ToResponses(entries))
}

type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Stage *string `json:"stage"`
	JobID *string `json:"jobId"`
}

func (r updateRequest) toInput() UpdateInput {
	return UpdateInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Stage: r.Stage,
		JobID: r.JobID,
	}
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	candidate, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to update candidate")
		return
	}
	c.Set("candidateId", candidate.ID)
	respond.OK(c, toResponse(candidate))
}

func (h *Handler) patch(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	prev := ""
	if req.Stage != nil {
		if existing, err := h.Svc.Get(c.Request.Context(), c.Param("id")); err == nil {
			prev = existing.Stage
		}
	}

	candidate, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to update candidate")
		return
	}
	c.Set("candidateId", candidate.ID)
	if prev != "" && prev != candidate.Stage {
		c.Set("stageTransition", prev+"->"+candidate.Stage)
	}
	respond.OK(c, toResponse(candidate))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete candidate")
		return
	}
	c.Status(http.StatusNoContent)
}

type noteRequest struct {
	Content    string   `json:"content"`
	AuthorID   string   `json:"authorId"`
	AuthorName string   `json:"authorName"`
	Mentions   []string `json:"mentions"`
}

func (h *Handler) addNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	candidate, err := h.Svc.AddNote(c.Request.Context(), c.Param("id"), req.Content, req.AuthorID, req.AuthorName, req.Mentions)
	if err != nil {
		h.fail(c, err, "failed to add note")
		return
	}
	c.Set("candidateId", candidate.ID)
	respond.JSON(c, http.StatusCreated, toResponse(candidate))
}

func (h *Handler) uploadResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	candidate, err := h.Svc.UploadResume(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		h.fail(c, err, "failed to upload resume")
		return
	}
	c.Set("candidateId", candidate.ID)
	respond.JSON(c, http.StatusCreated, toResponse(candidate))
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

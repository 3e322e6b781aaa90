package assessments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessments", h.list)
	rg.POST("/assessments", h.create)
	rg.GET("/assessments/by-job/:jobId", h.getByJob)
	rg.PUT("/assessments/by-job/:jobId", h.upsertByJob)
	rg.GET("/assessments/:id", h.get)
	rg.PUT("/assessments/:id", h.update)
	rg.DELETE("/assessments/:id", h.delete)
}

type assessmentRequest struct {
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	IsActive    *bool     `json:"isActive"`
}

func (r assessmentRequest) toInput() Input {
	return Input{
		JobID:       r.JobID,
		Title:       r.Title,
		Description: r.Description,
		Sections:    r.Sections,
		IsActive:    r.IsActive,
	}
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("jobId"))
	if err != nil {
		h.fail(c, err, "failed to list assessments")
		return
	}
	respond.OK(c, toResponses(list))
}

func (h *Handler) create(c *gin.Context) {
	var req assessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to create assessment")
		return
	}
	c.Set("jobId", a.JobID)
	respond.JSON(c, http.StatusCreated, ToResponse(a))
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch assessment")
		return
	}
	respond.OK(c, ToResponse(a))
}

// getByJob returns the job's assessment, or a JSON null body when the
// job has none. Clients treat the null as "no form configured yet".
func (h *Handler) getByJob(c *gin.Context) {
	a, err := h.Svc.GetByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, nil)
			return
		}
		h.fail(c, err, "failed to fetch assessment")
		return
	}
	respond.OK(c, ToResponse(a))
}

func (h *Handler) upsertByJob(c *gin.Context) {
	var req assessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.UpsertByJob(c.Request.Context(), c.Param("jobId"), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to save assessment")
		return
	}
	c.Set("jobId", a.JobID)
	respond.OK(c, ToResponse(a))
}

func (h *Handler) update(c *gin.Context) {
	var req assessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.fail(c, err, "failed to update assessment")
		return
	}
	c.Set("jobId", a.JobID)
	respond.OK(c, ToResponse(a))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete assessment")
		return
	}
	c.Status(http.StatusNoContent)
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

package timeline

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

// RegisterRoutes attaches timeline admin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidate-timeline", h.list)
	rg.POST("/candidate-timeline", h.create)
	rg.DELETE("/candidate-timeline/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	entries, err := h.Svc.ListByCandidate(c.Request.Context(), c.Query("candidateId"))
	if err != nil {
		h.fail(c, err, "failed to list timeline entries")
		return
	}
	respond.OK(c, ToResponses(entries))
}

type createRequest struct {
	CandidateID string `json:"candidateId"`
	Type        string `json:"type"`
	FromStage   string `json:"fromStage"`
	ToStage     string `json:"toStage"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	entry, err := h.Svc.Record(c.Request.Context(), req.CandidateID, req.Type, req.FromStage, req.ToStage, req.Description)
	if err != nil {
		h.fail(c, err, "failed to create timeline entry")
		return
	}
	respond.JSON(c, http.StatusCreated, ToResponse(entry))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete timeline entry")
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

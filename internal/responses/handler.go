package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/assessments"
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

// RegisterRoutes attaches response routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessment-responses", h.list)
	rg.POST("/assessment-responses", h.submit)
	rg.GET("/assessment-responses/:id", h.get)
	rg.PUT("/assessment-responses/:id", h.save)
	rg.DELETE("/assessment-responses/:id", h.delete)
}

type submitRequest struct {
	AssessmentID string                        `json:"assessmentId"`
	CandidateID  string                        `json:"candidateId"`
	Responses    map[string]assessments.Answer `json:"responses"`
	Complete     *bool                         `json:"complete"`
}

func (r submitRequest) toInput() SubmitInput {
	return SubmitInput{
		AssessmentID: r.AssessmentID,
		CandidateID:  r.CandidateID,
		Responses:    r.Responses,
	}
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), c.Query("assessmentId"), c.Query("candidateId"))
	if err != nil {
		h.fail(c, err, "failed to list responses")
		return
	}
	respond.OK(c, toResponseBodies(list))
}

// submit finalizes a submission unless complete=false asks for a draft
// save.
func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("candidateId", req.CandidateID)

	var resp Response
	var err error
	if req.Complete != nil && !*req.Complete {
		resp, err = h.Svc.Save(c.Request.Context(), req.toInput())
	} else {
		resp, err = h.Svc.Submit(c.Request.Context(), req.toInput())
	}
	if err != nil {
		h.fail(c, err, "failed to submit response")
		return
	}
	respond.JSON(c, http.StatusCreated, toResponseBody(resp))
}

func (h *Handler) get(c *gin.Context) {
	resp, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch response")
		return
	}
	respond.OK(c, toResponseBody(resp))
}

// save overwrites the answers of an existing open response as a draft.
func (h *Handler) save(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	existing, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch response")
		return
	}
	if existing.Completed() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "response is already completed", nil)
		return
	}

	input := SubmitInput{
		AssessmentID: existing.AssessmentID,
		CandidateID:  existing.CandidateID,
		Responses:    req.Responses,
	}
	c.Set("candidateId", existing.CandidateID)

	var resp Response
	if req.Complete != nil && *req.Complete {
		resp, err = h.Svc.Submit(c.Request.Context(), input)
	} else {
		resp, err = h.Svc.Save(c.Request.Context(), input)
	}
	if err != nil {
		h.fail(c, err, "failed to save response")
		return
	}
	respond.OK(c, toResponseBody(resp))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete response")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		respond.Error(c, http.StatusBadRequest, "validation_error", ve.Error(), ve.Fields)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

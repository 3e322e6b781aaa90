package jobs

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.POST("/jobs", h.create)
	rg.GET("/jobs/:id", h.get)
	rg.PUT("/jobs/:id", h.update)
	rg.PATCH("/jobs/:id", h.update)
	rg.PATCH("/jobs/:id/reorder", h.reorder)
	rg.DELETE("/jobs/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	params := ListParams{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Sort:   c.DefaultQuery("sort", SortByOrder),
		Page:   intQuery(c, "page", 1),
	}
	params.PageSize = intQuery(c, "pageSize", 10)

	result, err := h.Svc.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, err, "failed to list jobs")
		return
	}
	respond.OK(c, toListResponse(result))
}

type createRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Department  string   `json:"department"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Status:      req.Status,
		Tags:        req.Tags,
		Description: req.Description,
		Location:    req.Location,
		Department:  req.Department,
	})
	if err != nil {
		h.fail(c, err, "failed to create job")
		return
	}
	c.Set("jobId", job.ID)
	respond.JSON(c, http.StatusCreated, toResponse(job))
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch job")
		return
	}
	respond.OK(c, toResponse(job))
}

type updateRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Department  *string   `json:"department"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Status:      req.Status,
		Tags:        req.Tags,
		Description: req.Description,
		Location:    req.Location,
		Department:  req.Department,
	})
	if err != nil {
		h.fail(c, err, "failed to update job")
		return
	}
	c.Set("jobId", job.ID)
	respond.OK(c, toResponse(job))
}

type reorderRequest struct {
	FromOrder *int `json:"fromOrder"`
	ToOrder   *int `json:"toOrder"`
}

func (h *Handler) reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.FromOrder == nil || req.ToOrder == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fromOrder and toOrder are required", nil)
		return
	}

	job, err := h.Svc.Reorder(c.Request.Context(), c.Param("id"), *req.FromOrder, *req.ToOrder)
	if err != nil {
		h.fail(c, err, "failed to reorder job")
		return
	}
	c.Set("jobId", job.ID)
	respond.OK(c, toResponse(job))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Not found", nil)
	case errors.Is(err, ErrSlugTaken):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", err.Error(), nil)
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

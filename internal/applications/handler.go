package applications

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.create)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
	rg.PUT("/applications/:id", h.update)
	rg.DELETE("/applications/:id", h.delete)
}

type createRequest struct {
	CompanyName string     `json:"companyName"`
	RoleTitle   string     `json:"roleTitle"`
	DateApplied *time.Time `json:"dateApplied"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	Location    string     `json:"location"`
	Duration    string     `json:"duration"`
	Notes       string     `json:"notes"`
	ResumeID    string     `json:"resumeId"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	in := CreateInput{
		CompanyName: req.CompanyName,
		RoleTitle:   req.RoleTitle,
		Status:      req.Status,
		Source:      req.Source,
		Location:    req.Location,
		Duration:    req.Duration,
		Notes:       req.Notes,
		ResumeID:    req.ResumeID,
	}
	if req.DateApplied != nil {
		in.DateApplied = *req.DateApplied
	}

	app, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "failed to create application")
		return
	}

	c.Set("applicationId", app.ID)
	respond.Created(c, toResponse(app))
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err, "failed to list applications")
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toResponse(app))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("applicationId", id)

	app, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to fetch application")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

type updateRequest struct {
	CompanyName *string    `json:"companyName"`
	RoleTitle   *string    `json:"roleTitle"`
	DateApplied *time.Time `json:"dateApplied"`
	Status      *string    `json:"status"`
	Source      *string    `json:"source"`
	Location    *string    `json:"location"`
	Duration    *string    `json:"duration"`
	Notes       *string    `json:"notes"`
	ResumeID    *string    `json:"resumeId"`
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("applicationId", id)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Update(c.Request.Context(), id, UpdateInput{
		CompanyName: req.CompanyName,
		RoleTitle:   req.RoleTitle,
		DateApplied: req.DateApplied,
		Status:      req.Status,
		Source:      req.Source,
		Location:    req.Location,
		Duration:    req.Duration,
		Notes:       req.Notes,
		ResumeID:    req.ResumeID,
	})
	if err != nil {
		h.respondError(c, err, "failed to update application")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(app))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("applicationId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "failed to delete application")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	case errors.Is(err, ErrInvalidStatus):
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be one of Applied, Interview, Offer, Rejected", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "companyName and roleTitle are required", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

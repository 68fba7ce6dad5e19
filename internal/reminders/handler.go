package reminders

import (
	"errors"
	"net/http"
	"strconv"
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

// RegisterRoutes attaches reminder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reminders", h.create)
	rg.GET("/reminders", h.list)
	rg.GET("/reminders/upcoming", h.upcoming)
	rg.GET("/reminders/:id", h.get)
	rg.PUT("/reminders/:id", h.update)
	rg.DELETE("/reminders/:id", h.delete)
}

type createRequest struct {
	ApplicationID string    `json:"applicationId"`
	Type          string    `json:"type"`
	Message       string    `json:"message"`
	DueDate       time.Time `json:"dueDate"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rem, err := h.Svc.Create(c.Request.Context(), CreateInput{
		ApplicationID: req.ApplicationID,
		Type:          req.Type,
		Message:       req.Message,
		DueDate:       req.DueDate,
	})
	if err != nil {
		h.respondError(c, err, "failed to create reminder")
		return
	}

	c.Set("applicationId", rem.ApplicationID)
	respond.Created(c, toResponse(rem))
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{ApplicationID: c.Query("applicationId")}
	if v := c.Query("isCompleted"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "isCompleted must be a boolean", nil)
			return
		}
		filter.IsCompleted = &parsed
	}

	rems, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "failed to list reminders")
		return
	}
	respond.JSON(c, http.StatusOK, toResponses(rems))
}

func (h *Handler) upcoming(c *gin.Context) {
	rems, err := h.Svc.Upcoming(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to list upcoming reminders")
		return
	}
	respond.JSON(c, http.StatusOK, toResponses(rems))
}

func (h *Handler) get(c *gin.Context) {
	rem, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch reminder")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rem))
}

type updateRequest struct {
	Type        *string    `json:"type"`
	Message     *string    `json:"message"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted *bool      `json:"isCompleted"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rem, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Type:        req.Type,
		Message:     req.Message,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.respondError(c, err, "failed to update reminder")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rem))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete reminder")
		return
	}
	respond.NoContent(c)
}

func toResponses(rems []Reminder) []ReminderResponse {
	resp := make([]ReminderResponse, 0, len(rems))
	for _, rem := range rems {
		resp = append(resp, toResponse(rem))
	}
	return resp
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "reminder not found", nil)
	case errors.Is(err, ErrApplicationMissing):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "applicationId, a valid type, and dueDate are required", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

package communications

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

// RegisterRoutes attaches communication routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/communications", h.create)
	rg.GET("/communications", h.list)
	rg.GET("/communications/tracking/summary", h.trackingSummary)
	rg.GET("/communications/tracking/statistics", h.trackingStatistics)
	rg.GET("/communications/:id", h.get)
	rg.PUT("/communications/:id", h.update)
	rg.DELETE("/communications/:id", h.delete)
}

type createRequest struct {
	ApplicationID string     `json:"applicationId"`
	Type          string     `json:"type"`
	Message       string     `json:"message"`
	Timestamp     *time.Time `json:"timestamp"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	in := CreateInput{
		ApplicationID: req.ApplicationID,
		Type:          req.Type,
		Message:       req.Message,
	}
	if req.Timestamp != nil {
		in.Timestamp = *req.Timestamp
	}

	comm, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "failed to log communication")
		return
	}

	c.Set("applicationId", comm.ApplicationID)
	respond.Created(c, toResponse(comm))
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		ApplicationID: c.Query("applicationId"),
		Type:          c.Query("type"),
	}
	if v := c.Query("startDate"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "startDate must be RFC3339", nil)
			return
		}
		filter.Start = &parsed
	}
	if v := c.Query("endDate"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "endDate must be RFC3339", nil)
			return
		}
		filter.End = &parsed
	}

	comms, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "failed to list communications")
		return
	}

	resp := make([]CommunicationResponse, 0, len(comms))
	for _, comm := range comms {
		resp = append(resp, toResponse(comm))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) trackingSummary(c *gin.Context) {
	summaries, err := h.Svc.TrackingSummaryList(c.Request.Context(), c.Query("applicationId"))
	if err != nil {
		h.respondError(c, err, "failed to build response tracking summary")
		return
	}
	resp := make([]TrackingSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, toTrackingSummaryResponse(summary))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) trackingStatistics(c *gin.Context) {
	stats, err := h.Svc.TrackingStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to compute response statistics")
		return
	}
	respond.JSON(c, http.StatusOK, toTrackingStatisticsResponse(stats))
}

func (h *Handler) get(c *gin.Context) {
	comm, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch communication")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(comm))
}

type updateRequest struct {
	Type      *string    `json:"type"`
	Message   *string    `json:"message"`
	Timestamp *time.Time `json:"timestamp"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	comm, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Type:      req.Type,
		Message:   req.Message,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.respondError(c, err, "failed to update communication")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(comm))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete communication")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "communication not found", nil)
	case errors.Is(err, ErrApplicationMissing):
		respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "applicationId and a valid type are required", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

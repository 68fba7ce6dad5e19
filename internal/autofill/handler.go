package autofill

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/applications"
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

// RegisterRoutes attaches autofill routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/autofill/parse", h.parse)
}

type parseRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Capture(c.Request.Context(), req.URL, req.Text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "url or text is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to capture application", nil)
		return
	}

	c.Set("applicationId", app.ID)
	respond.Created(c, applications.NewResponse(app))
}

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/autofill"
	"jobtrack-backend/internal/communications"
	"jobtrack-backend/internal/reminders"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// RouterDeps carries the feature handlers the router wires up.
type RouterDeps struct {
	Config               config.Config
	ResumeHandler        *resumes.Handler
	ApplicationHandler   *applications.Handler
	AutofillHandler      *autofill.Handler
	CommunicationHandler *communications.Handler
	ReminderHandler      *reminders.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 25, Burst: 50},
				"UPLOAD":  {Rate: 1, Burst: 5},
			},
			GroupFor: rateLimitGroup,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(api)
	}
	if deps.AutofillHandler != nil {
		deps.AutofillHandler.RegisterRoutes(api)
	}
	if deps.CommunicationHandler != nil {
		deps.CommunicationHandler.RegisterRoutes(api)
	}
	if deps.ReminderHandler != nil {
		deps.ReminderHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/resumes/upload") {
		return "UPLOAD"
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

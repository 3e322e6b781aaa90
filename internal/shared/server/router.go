package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/assessments"
	"talentflow-backend/internal/candidates"
	"talentflow-backend/internal/jobs"
	"talentflow-backend/internal/responses"
	"talentflow-backend/internal/shared/config"
	"talentflow-backend/internal/shared/metrics"
	"talentflow-backend/internal/shared/server/middleware"
	"talentflow-backend/internal/shared/server/respond"
	"talentflow-backend/internal/timeline"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	JobHandler        *jobs.Handler
	CandidateHandler  *candidates.Handler
	TimelineHandler   *timeline.Handler
	AssessmentHandler *assessments.Handler
	ResponseHandler   *responses.Handler
}

// NewRouter constructs the Gin engine with middleware and routes
// registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimits()),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.JobHandler.RegisterRoutes(api)
	deps.CandidateHandler.RegisterRoutes(api)
	deps.TimelineHandler.RegisterRoutes(api)
	deps.AssessmentHandler.RegisterRoutes(api)
	deps.ResponseHandler.RegisterRoutes(api)

	return r
}

// rateLimits throttles writes harder than reads.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 50, Burst: 100},
			"WRITE":   {Rate: 10, Burst: 20},
		},
		GroupFor: func(c *gin.Context) string {
			switch c.Request.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				return "WRITE"
			default:
				return "DEFAULT"
			}
		},
	}
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

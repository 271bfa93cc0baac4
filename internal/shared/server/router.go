package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matcher-backend/internal/jobseeker"
	"matcher-backend/internal/matches"
	"matcher-backend/internal/services/health"
	"matcher-backend/internal/shared/config"
	"matcher-backend/internal/shared/metrics"
	"matcher-backend/internal/shared/server/middleware"
	"matcher-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	Health           *health.Service
	MatchHandler     *matches.Handler
	JobseekerHandler *jobseeker.Handler
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
		middleware.RateLimit(rateLimitConfig()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if ok, _ := status["ok"].(bool); !ok {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})

	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.JobseekerHandler != nil {
		deps.JobseekerHandler.RegisterRoutes(api.Group("/jobseeker"))
	}

	return r
}

// History reads are cheaper than match computation, so they get a looser
// bucket than the default write path.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 10},
			"HISTORY": {Rate: 20, Burst: 40},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return "HISTORY"
			}
			return "DEFAULT"
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

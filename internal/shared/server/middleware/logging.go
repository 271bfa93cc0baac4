package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"matcher-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		matchID, _ := c.Get("matchId")
		analysisID, _ := c.Get("analysisId")
		resumeID, _ := c.Get("generatedResumeId")

		telemetry.Info("request.complete", map[string]any{
			"request_id":          reqID,
			"method":              c.Request.Method,
			"path":                c.Request.URL.Path,
			"status":              status,
			"duration_ms":         float64(latency.Microseconds()) / 1000.0,
			"match_id":            matchID,
			"analysis_id":         analysisID,
			"generated_resume_id": resumeID,
			"client_ip":           c.ClientIP(),
			"user_agent":          c.Request.UserAgent(),
		})
	}
}

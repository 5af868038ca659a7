package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/openai-mock/internal/version"
)

const serviceName = "openai-mock"

var synthesisEndpoints = []string{
	"/v1/completions",
	"/v1/chat/completions",
	"/v1/embeddings",
}

type HealthHandler struct {
	started time.Time
	baseURL string
}

func NewHealthHandler(started time.Time, baseURL string) *HealthHandler {
	return &HealthHandler{started: started, baseURL: baseURL}
}

// Health reports liveness.
//
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        serviceName,
		"version":        version.Current(),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"endpoints":      synthesisEndpoints,
	})
}

// Root describes the service.
//
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "OpenAI Mock API Server",
		"version":  version.Current(),
		"base_url": h.baseURL,
		"endpoints": gin.H{
			"completions":      "/v1/completions",
			"chat_completions": "/v1/chat/completions",
			"embeddings":       "/v1/embeddings",
			"models":           "/v1/models",
			"health":           "/health",
		},
		"authentication": gin.H{
			"type":   "Bearer",
			"header": "Authorization",
		},
		"documentation": "https://platform.openai.com/docs/api-reference",
	})
}

package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service
// identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "privassistant-scheduler"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

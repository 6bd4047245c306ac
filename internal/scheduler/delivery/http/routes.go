package http

import (
	"github.com/gin-gonic/gin"

	"privassistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// generation endpoint is rate limited per client; reads and exports
// are not.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	r.POST("/generate-tasks", mw.RateLimit(), h.GenerateTasks)

	tasks := r.Group("/api/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)

		tasks.GET("/export/csv", h.ExportCSV)
		tasks.GET("/export/ics", h.ExportICS)
		tasks.GET("/export/pdf", h.ExportPDF)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"privassistant/internal/scheduler"
	"privassistant/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery
// layer.
type Handler interface {
	GenerateTasks(c *gin.Context)
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ExportCSV(c *gin.Context)
	ExportICS(c *gin.Context)
	ExportPDF(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduler.UseCase
}

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"privassistant/internal/scheduler"
	"privassistant/pkg/response"
)

// respondError translates domain errors into the wire error shape.
// Anything unrecognized is an internal failure.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduler.ErrNoPrompt),
		errors.Is(err, scheduler.ErrEmptyPrompt),
		errors.Is(err, scheduler.ErrMissingField):
		response.BadRequest(c, err)
	case errors.Is(err, scheduler.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

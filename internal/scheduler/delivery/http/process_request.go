package http

import (
	"github.com/gin-gonic/gin"

	"privassistant/internal/scheduler"
)

// processGenerateReq binds and validates the generate-tasks body. A
// body that is not valid JSON is treated the same as a missing
// prompt.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, scheduler.ErrNoPrompt
	}
	return req, req.validate()
}

// processCreateReq binds and validates the manual task creation body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the partial update body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

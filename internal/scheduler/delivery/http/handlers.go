package http

import (
	"github.com/gin-gonic/gin"

	"privassistant/pkg/response"
)

// GenerateTasks godoc
// @Summary     Generate tasks from a natural-language prompt
// @Description Extracts zero or more schedulable tasks from one free-form scheduling sentence or multi-sentence prompt.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt"
// @Success     200 {array}  model.Task
// @Failure     400 {object} response.Err "Missing or empty prompt"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /generate-tasks [POST]
func (h *handler) GenerateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	batch, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, batch)
}

// List godoc
// @Summary     List tasks
// @Description Returns the full task collection.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  model.Task
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, tasks)
}

// Create godoc
// @Summary     Create a task
// @Description Persists one manually authored task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} model.Task
// @Failure     400 {object} response.Err "Missing required field"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.Created(c, created)
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates an existing task. The ID is preserved.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} model.Task
// @Failure     404 {object} response.Err "Not Found"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, updated)
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Err "Not Found"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

// ExportCSV godoc
// @Summary     Export tasks as CSV
// @Tags        Export
// @Produce     text/csv
// @Success     200 {string} string "CSV document"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks/export/csv [GET]
func (h *handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportCSV(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCSV: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, "tasks.csv", "text/csv", data)
}

// ExportICS godoc
// @Summary     Export tasks as an iCalendar file
// @Tags        Export
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar document"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks/export/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, "tasks.ics", "text/calendar", data)
}

// ExportPDF godoc
// @Summary     Export tasks as PDF
// @Tags        Export
// @Produce     application/pdf
// @Success     200 {string} string "PDF document"
// @Failure     500 {object} response.Err "Internal Server Error"
// @Router      /api/tasks/export/pdf [GET]
func (h *handler) ExportPDF(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportPDF(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportPDF: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, "tasks.pdf", "application/pdf", data)
}

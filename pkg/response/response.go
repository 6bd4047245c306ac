package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the raw JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with data as the raw JSON body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends 400 with the error payload.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Err{Error: err.Error()})
}

// NotFound sends 404 with the error payload.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Err{Error: err.Error()})
}

// TooManyRequests sends 429 with the error payload.
func TooManyRequests(c *gin.Context, err error) {
	c.JSON(http.StatusTooManyRequests, Err{Error: err.Error()})
}

// InternalError sends 500 with the error payload.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Err{Error: err.Error()})
}

// Attachment sends data as a downloadable file.
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// Package response provides shared gin response helpers and the error envelope.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error writes an error envelope with the given code and HTTP status.
func Error(c *gin.Context, code, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// NotFound writes a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, "NOT_FOUND", message, http.StatusNotFound)
}

// Conflict writes a 409 error envelope.
func Conflict(c *gin.Context, message string) {
	Error(c, "CONFLICT", message, http.StatusConflict)
}

// Forbidden writes a 403 error envelope.
func Forbidden(c *gin.Context, message string) {
	Error(c, "FORBIDDEN", message, http.StatusForbidden)
}

// InvalidState writes a 409 envelope for operations invalid in the current status.
func InvalidState(c *gin.Context, message string) {
	Error(c, "INVALID_STATE", message, http.StatusConflict)
}

// InvalidTransition writes a 409 envelope for disallowed status edges.
func InvalidTransition(c *gin.Context, message string) {
	Error(c, "INVALID_TRANSITION", message, http.StatusConflict)
}

// Validation writes a 400 envelope for malformed input.
func Validation(c *gin.Context, message string) {
	Error(c, "VALIDATION_ERROR", message, http.StatusBadRequest)
}

// Internal writes a 500 envelope.
func Internal(c *gin.Context) {
	Error(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/errors"
)

// APIResponse is the JSON contract the contact form client consumes: a
// success flag plus a human-readable, already-localized message.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
	})
}

// ErrorResponse sends an error response with custom status code
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// ErrorResponseWithError sends an error response based on the error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr, ok := errors.GetAppError(err); ok {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

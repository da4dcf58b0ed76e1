package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware stores the id under
const RequestIDKey = "RequestID"

// Response standardizes the API JSON envelope used for errors and the echo route
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get(RequestIDKey)
	idStr, _ := id.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. err should be non-nil so clients always see an error field.
func Error(c *gin.Context, code int, message string, err any) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

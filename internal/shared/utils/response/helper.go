package response

import "github.com/gin-gonic/gin"

// Success writes a 2xx envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, StandardApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a non-2xx envelope. errors carries validation details when present.
func Error(c *gin.Context, code int, message string, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}

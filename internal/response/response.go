package response

import "github.com/gin-gonic/gin"

// The API's wire format is deliberately plain: records and arrays are
// returned bare, errors are plain text, and empty statuses carry no body.
// The frontend depends on these exact shapes.

// JSON sends v as the response body with the given status code.
func JSON(c *gin.Context, statusCode int, v interface{}) {
	c.JSON(statusCode, v)
}

// Text sends a plain-text message with the given status code.
// Used for the duplicate-registration error.
func Text(c *gin.Context, statusCode int, msg string) {
	c.String(statusCode, msg)
}

// Empty sends the given status code with no body.
func Empty(c *gin.Context, statusCode int) {
	c.Status(statusCode)
}

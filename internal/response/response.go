package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is the existing clients': success payloads are raw domain
// objects, errors carry a {"message": ...} body, and the 401 entry point has
// its dedicated shape below.

// Message sends a {"message": ...} body with the given status code.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationError sends a 400 with the translated field errors.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  fields,
	})
}

// unauthorizedBody is the structured 401 written when an unauthenticated
// request reaches a protected route.
type unauthorizedBody struct {
	Path    string `json:"path"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Unauthorized aborts the request with the structured 401 entry-point body.
// It is terminal: the request is not forwarded further.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody{
		Path:    c.Request.URL.Path,
		Error:   "Unauthorized",
		Message: message,
		Status:  http.StatusUnauthorized,
	})
}

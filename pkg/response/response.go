package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks in flat field→message maps for client errors, matching what
// front-ends bind to form fields. Success bodies are emitted by the handlers
// directly.

// FieldErrors maps a request field to a human-readable message.
type FieldErrors map[string]string

// Fields writes a field-level error body with the given status.
func Fields(c *gin.Context, status int, errs FieldErrors) {
	c.JSON(status, errs)
}

// Field is shorthand for a single field error.
func Field(c *gin.Context, status int, field, message string) {
	c.JSON(status, FieldErrors{field: message})
}

// ServerError writes a generic 500 body. Internals (store errors, broker
// errors) are logged server-side and never echoed to the client.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// Unauthorized writes a 401 body for missing/invalid/expired credentials.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

package middleware

import "github.com/gin-gonic/gin"

const (
	requestIDKey    = contextKey("requestID")
	requestIDHeader = "X-Request-ID"
)

// GetRequestIDFromContext retrieves the request id assigned by StructuredLoggingMiddleware.
// It returns the id and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(requestIDKey).(string); ok {
			return v, true
		}
		return "", false
	}

	requestID, ok := val.(string)
	return requestID, ok
}

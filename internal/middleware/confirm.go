package middleware

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// confirmParam is the query parameter a client sets to confirm a destructive request.
const confirmParam = "confirm"

// RequireConfirmation aborts with 409 Conflict unless the request carries ?confirm=true.
func RequireConfirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		confirmed, _ := strconv.ParseBool(c.Query(confirmParam))
		if !confirmed {
			GetLoggerFromCtx(c.Request.Context()).Warn("Destructive request without confirmation")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": apperrors.ErrConfirmationRequired.Error() + ": repeat the request with ?confirm=true",
			})
			return
		}
		c.Next()
	}
}

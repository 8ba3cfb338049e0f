package middleware

import (
	"net/http"

	"devconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs any errors attached to the context by handlers and
// converts them into the opaque server-error response.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, "Server error")
		}
	}
}

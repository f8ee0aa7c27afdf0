package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"emotiai/pkg/log"
)

// RequestIDHeader is read from the request when present and always echoed on the response.
const RequestIDHeader = "X-Request-ID"

// RequestID stores a request id in the request context so every log entry carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

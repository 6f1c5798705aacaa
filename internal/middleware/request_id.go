package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-service/pkg/log"
)

const HeaderRequestID = "X-Request-Id"

// RequestID propagates the caller's request id or generates one, and stores it
// in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIdHeader = "X-Request-ID"
	RequestIdKey    = "request_id"
)

// RequestIdMiddleware keeps a caller supplied X-Request-ID or assigns a new one.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIdKey, id)
		c.Writer.Header().Set(RequestIdHeader, id)
		c.Next()
	}
}

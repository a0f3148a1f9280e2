package middleware

import (
	"time"

	"investments-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		requestLog := log.WithField(RequestIdKey, c.GetString(RequestIdKey))
		switch {
		case status >= 500:
			requestLog.Warnf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		default:
			requestLog.Debugf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"investments-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// ErrorMiddleware turns panics and errors pushed with c.Error into a 500
// JSON body, unless the handler already wrote a response. redact is applied
// to the message before it leaves the process; nil leaves it untouched.
func ErrorMiddleware(log *logger.Logger, redact func(string) string) gin.HandlerFunc {
	if redact == nil {
		redact = func(s string) string { return s }
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				log.Error(err, "Unhandled panic")
				abort(c, redact(err.Error()))
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			log.Error(err, "Unhandled request error")
			abort(c, redact(err.Error()))
		}
	}
}

func abort(c *gin.Context, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal Server Error",
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
	})
}

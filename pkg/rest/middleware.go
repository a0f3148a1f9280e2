package rest

import "github.com/gin-gonic/gin"

// GlobalGroup applies a middleware to the whole engine rather than one group.
const GlobalGroup = "*"

// Middleware binds a handler to a route group; it is installed before any
// route of that group is registered.
type Middleware struct {
	Handler gin.HandlerFunc
	Group   string
}

func NewMiddleware(group string, handler gin.HandlerFunc) Middleware {
	return Middleware{Group: group, Handler: handler}
}

// Global is NewMiddleware(GlobalGroup, handler).
func Global(handler gin.HandlerFunc) Middleware {
	return NewMiddleware(GlobalGroup, handler)
}

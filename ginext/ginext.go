// Package ginext exposes the toolkit's call wrappers to HTTP handlers:
// request-id correlation and per-request duration logging on top of gin.
package ginext

import (
	"github.com/gin-gonic/gin"
)

// Engine wraps a gin.Engine.
type Engine struct {
	*gin.Engine
}

// Context is an alias for gin.Context.
type Context = gin.Context

// HandlerFunc is an alias for gin.HandlerFunc.
type HandlerFunc = gin.HandlerFunc

// New creates a bare Engine with no middleware attached.
func New() *Engine {
	return &Engine{gin.New()}
}

// GET registers a GET route.
func (e *Engine) GET(relativePath string, handlers ...gin.HandlerFunc) {
	e.Engine.GET(relativePath, handlers...)
}

// POST registers a POST route.
func (e *Engine) POST(relativePath string, handlers ...gin.HandlerFunc) {
	e.Engine.POST(relativePath, handlers...)
}

// Run attaches the router to an http.Server and starts listening.
func (e *Engine) Run(addr ...string) error {
	return e.Engine.Run(addr...)
}

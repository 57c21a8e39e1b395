package ginext

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-again/again/helpers"
	"github.com/go-again/again/logger"
)

// RequestIDHeader is the header carrying the request's correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation ID, honoring one supplied by
// the client. The ID is stored in the request context for log enrichment and
// echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = helpers.CreateUUID()
		}

		ctx := logger.SetRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// Timing measures each request with the timed-call contract: the handler runs
// exactly once and its duration is reported through l as a side effect, named
// by method and path.
func Timing(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogDuration(c.Request.Context(),
			c.Request.Method+" "+c.FullPath(),
			time.Since(start),
		)
	}
}

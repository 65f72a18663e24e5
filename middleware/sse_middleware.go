package middleware

import (
	"time"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/outbound"
	"github.com/gin-gonic/gin"
)

// SSEMiddleware disables proxy buffering for event streams and logs each subscription.
func SSEMiddleware(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Accel-Buffering", "no")
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		started := time.Now()
		logger.DebugWithFields("event stream subscribed", map[string]interface{}{
			"client": c.ClientIP(),
		})

		c.Next()

		logger.DebugWithFields("event stream closed", map[string]interface{}{
			"client":   c.ClientIP(),
			"duration": time.Since(started).String(),
		})
	}
}

package middleware

import (
	"time"

	"github.com/gaiapac/backend/internal/logging"
	"github.com/gaiapac/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs request information. Output is gated behind the
// LOG_REQUESTS environment variable inside the logger itself.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		logger.LogHTTPRequest(method, path, utils.GetRealIP(c), c.Writer.Status(), latency.String())
	}
}

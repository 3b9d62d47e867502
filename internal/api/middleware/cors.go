package middleware

import (
	"net/http"
	"strings"

	"github.com/gaiapac/backend/internal/api/cors"
	"github.com/gaiapac/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// Fixed enumerated list of request headers the API accepts cross-origin.
const allowedHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"

const (
	methodsReadOnly = "GET,OPTIONS"
	methodsAPI      = "GET,POST,PUT,DELETE,OPTIONS"
)

// CORS evaluates the request origin against the allow-set and attaches the
// cross-origin response headers. Preflight requests are answered immediately
// with an empty 200 and never reach a handler. A request from a disallowed
// origin is not rejected here: the headers simply leave the browser unable
// to read the response.
func CORS(policy *cors.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := policy.Evaluate(c.Request.Header.Get("Origin"))
		if !decision.Allowed {
			logging.GetGlobalLogger().Warn("CORS blocked origin: %s", decision.RequestOrigin)
		}

		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Origin", decision.HeaderValue)
		header.Set("Access-Control-Allow-Methods", methodsFor(c.Request.URL.Path))
		header.Set("Access-Control-Allow-Headers", allowedHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// methodsFor returns the method set relevant to the endpoint: read-only
// endpoints advertise GET+OPTIONS, everything else the general API surface.
func methodsFor(path string) string {
	switch strings.TrimSuffix(path, "/") {
	case "", "/info", "/health", "/api", "/api/health":
		return methodsReadOnly
	}
	return methodsAPI
}

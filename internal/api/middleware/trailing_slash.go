package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TrailingSlash removes the need for strict trailing slash matching.
func TrailingSlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			c.Request.URL.Path = strings.TrimSuffix(path, "/")
		}

		c.Next()
	}
}

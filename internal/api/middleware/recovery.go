package middleware

import (
	"net/http"

	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic during request handling into a generic 500
// response. Nothing propagates past the handler boundary.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetGlobalLogger().Error("Panic recovered: %s %s: %v",
					c.Request.Method, c.Request.URL.Path, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error", ""))
			}
		}()

		c.Next()
	}
}

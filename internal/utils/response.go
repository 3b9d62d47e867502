package utils

import (
	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the global logger
func LogError(err error, message string) {
	logging.GetGlobalLogger().Error("%s: %v", message, err)
}

// ErrorDetail returns the technical detail string for an error, or "" when
// running in release mode. Client-facing messages stay generic in production.
func ErrorDetail(err error) string {
	if err == nil || gin.Mode() == gin.ReleaseMode {
		return ""
	}
	return err.Error()
}

// HandleAPIError logs a failed request and sends the standard error body.
// The underlying error is attached only outside release mode.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(c.Request.Method, c.Request.URL.Path, GetRealIP(c), status, message, err)

	c.JSON(status, common.NewErrorResponse(message, ErrorDetail(err)))
}

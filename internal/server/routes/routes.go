package routes

import (
	"github.com/gaiapac/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups. The serverless deployment historically
// exposed every endpoint both with and without the /api prefix; one engine
// serves both shapes with a single set of handlers.
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	root := router.Group("")
	SetupInfoRoutes(root, h.Info)
	SetupHealthRoutes(root, h.Health)
	SetupContactRoutes(root, h.Contact, m)

	api := router.Group("/api")
	api.GET("", h.Info.Describe)
	SetupHealthRoutes(api, h.Health)
	SetupContactRoutes(api, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}

package routes

import (
	"github.com/gaiapac/backend/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupInfoRoutes configures the service descriptor endpoints
func SetupInfoRoutes(router *gin.RouterGroup, info *handlers.InfoHandler) {
	router.GET("/", info.Describe)
	router.GET("/info", info.Describe)
}

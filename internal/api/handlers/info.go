package handlers

import (
	"net/http"

	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/version"

	"github.com/gin-gonic/gin"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Describe serves the static service descriptor.
func (h *InfoHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, common.InfoResponse{
		Message: "Gaiapac Backend API",
		Version: version.Version,
		Status:  "running",
		Endpoints: map[string]common.EndpointInfo{
			"contact": {
				Path:        "/contact or /api/contact",
				Method:      http.MethodPost,
				Description: "Submit contact form",
			},
			"health": {
				Path:        "/health or /api/health",
				Method:      http.MethodGet,
				Description: "Health check endpoint",
			},
		},
		Documentation: "See README.md for API documentation",
	})
}

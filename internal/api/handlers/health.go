package handlers

import (
	"errors"
	"net/http"

	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/repository"
	"github.com/gaiapac/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	submissions repository.SubmissionRepository
}

func NewHealthHandler(submissions repository.SubmissionRepository) *HealthHandler {
	return &HealthHandler{
		submissions: submissions,
	}
}

// Check probes database connectivity with a read-only query. An unconfigured
// store answers immediately without a network call.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.submissions.Probe(c.Request.Context()); err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, common.HealthResponse{
				Status:   "ERROR",
				Message:  "Database client not initialized. Please check environment variables.",
				Database: "not_connected",
			})
			return
		}

		utils.LogError(err, "Health check database probe failed")
		c.JSON(http.StatusServiceUnavailable, common.HealthResponse{
			Status:  "ERROR",
			Message: "Server is running but database connection failed",
			Error:   utils.ErrorDetail(err),
		})
		return
	}

	c.JSON(http.StatusOK, common.HealthResponse{
		Status:   "OK",
		Message:  "Server is running",
		Database: "connected",
	})
}

package handlers

import (
	"net/http"

	"github.com/gaiapac/backend/internal/api/constants"
	"github.com/gaiapac/backend/internal/api/dto/v1/contact"
	"github.com/gaiapac/backend/internal/logging"
	"github.com/gaiapac/backend/internal/models"
	"github.com/gaiapac/backend/internal/repository"
	"github.com/gaiapac/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	submissions repository.SubmissionRepository
}

func NewContactHandler(submissions repository.SubmissionRepository) *ContactHandler {
	return &ContactHandler{
		submissions: submissions,
	}
}

// Submit persists a validated contact form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	value, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Contact data not found in context")
		return
	}

	req, ok := value.(*contact.SubmitRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid contact data format")
		return
	}

	submission := &models.Submission{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		CompanyName:     req.CompanyName,
		PhoneNumber:     req.PhoneNumber,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
	}

	saved, err := h.submissions.Insert(c.Request.Context(), submission)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError,
			"An error occurred while saving your message. Please try again later.")
		return
	}

	logging.GetGlobalLogger().Info("New contact form submission: id=%s name=%s %s email=%s",
		saved.ID, req.FirstName, req.LastName, req.Email)

	c.JSON(http.StatusOK, contact.SubmitResponse{
		Success: true,
		Message: "Thank you for contacting us! We will get back to you soon.",
		Data:    &contact.SubmitData{ID: saved.ID},
	})
}

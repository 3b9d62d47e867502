package middleware

import (
	"net/http"

	"github.com/gaiapac/backend/internal/api/constants"
	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/api/dto/v1/contact"
	"github.com/gaiapac/backend/internal/api/validation"
	"github.com/gaiapac/backend/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateContactRequest binds and validates a contact form submission and
// stores the bound request in the context for the handler. No store call
// happens when validation fails.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid request body", ""))
			c.Abort()
			return
		}

		if verr := validation.ValidateSubmission(m.validate, &req); verr != nil {
			logging.GetGlobalLogger().Warn("Validation failed: %s", verr.Kind)
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(verr.Message, ""))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

package validation

import (
	"regexp"
	"strings"

	"github.com/gaiapac/backend/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
)

// Basic local@domain.tld shape: no whitespace or extra @ on either side of
// the @, and at least one dot in the domain part.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FailureKind identifies which validation rule rejected a submission.
type FailureKind string

const (
	MissingRequiredField FailureKind = "MISSING_REQUIRED_FIELD"
	InvalidEmailFormat   FailureKind = "INVALID_EMAIL_FORMAT"
)

// Error is a validation failure with a user-safe message.
type Error struct {
	Kind    FailureKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_email", validateContactEmail)
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ValidateSubmission checks a candidate submission. Rules run in order and
// the first failure wins: required-field presence, then email format.
// Optional fields are not validated or normalized.
func ValidateSubmission(v *validator.Validate, req *contact.SubmitRequest) *Error {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return &Error{
			Kind:    MissingRequiredField,
			Message: "Please fill in all required fields (First Name, Last Name, Email, Message)",
		}
	}

	if err := v.Var(req.Email, "contact_email"); err != nil {
		return &Error{
			Kind:    InvalidEmailFormat,
			Message: "Please provide a valid email address",
		}
	}

	return nil
}

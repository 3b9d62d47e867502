package constants

// Context keys for validated requests
const (
	// ContextKeyContact holds the bound contact submission set by the
	// validation middleware.
	ContextKeyContact = "contact"

	// ContextKeyRequestID holds the id assigned by the RequestID middleware.
	ContextKeyRequestID = "RequestID"
)

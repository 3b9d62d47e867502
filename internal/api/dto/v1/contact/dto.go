package contact

// SubmitRequest represents a contact form submission. firstName, lastName,
// email and message are required; the remaining fields pass through as given
// and are stored as NULL when empty. Required-field and email-format checks
// live in the validation package so failures keep their defined order.
type SubmitRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	CompanyName     string `json:"companyName"`
	PhoneNumber     string `json:"phoneNumber"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
}

// SubmitData carries the store-assigned identifier of a saved submission.
type SubmitData struct {
	ID string `json:"id"`
}

// SubmitResponse represents the response after submitting the contact form.
type SubmitResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *SubmitData `json:"data,omitempty"`
}

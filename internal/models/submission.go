package models

import "time"

// SubmissionStatusPending is assigned to every submission on insert.
const SubmissionStatusPending = "pending"

// Submission represents one contact-form entry. ID, Status and CreatedAt are
// assigned by the store at persistence time; a Submission is never persisted
// unless FirstName, LastName, Email and Message are non-empty and the email
// passed the format check.
type Submission struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"companyName,omitempty"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	ServiceInterest string    `json:"serviceInterest,omitempty"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

package repository

import (
	"context"

	"github.com/gaiapac/backend/internal/models"
)

// SubmissionRepository mediates all reads and writes of contact submissions.
type SubmissionRepository interface {
	// Insert persists a validated submission and returns it with the
	// store-assigned id, status and creation timestamp populated.
	Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error)

	// Probe performs a read-only connectivity check against the submissions
	// table. It returns nil when the store is reachable and never returns data.
	Probe(ctx context.Context) error
}

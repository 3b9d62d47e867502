package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gaiapac/backend/internal/models"
)

// PGSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository. Constructing it with a nil handle yields the
// degraded gateway: every operation reports ErrStoreUnavailable without
// touching the network, which keeps /health answerable when the database
// was never configured.
type PGSubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a submission repository backed by db.
func NewSubmissionRepository(db *sql.DB) *PGSubmissionRepository {
	return &PGSubmissionRepository{db: db}
}

var _ SubmissionRepository = (*PGSubmissionRepository)(nil)

// Insert persists one submission with status "pending". Optional fields are
// stored as NULL when empty; id and created_at come back via RETURNING.
func (r *PGSubmissionRepository) Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}

	submission.Status = models.SubmissionStatusPending
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contact_submissions
		   (first_name, last_name, email, company_name, phone_number, service_interest, message, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
		 RETURNING id, created_at`,
		submission.FirstName, submission.LastName, submission.Email,
		submission.CompanyName, submission.PhoneNumber, submission.ServiceInterest,
		submission.Message, submission.Status,
	).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return nil, &StoreError{Op: "insert submission", Err: err}
	}

	return submission, nil
}

// Probe runs a limit-1 read against the submissions table. An empty table is
// a reachable table, so sql.ErrNoRows counts as success.
func (r *PGSubmissionRepository) Probe(ctx context.Context) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}

	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM contact_submissions LIMIT 1`).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Op: "probe submissions", Err: err}
	}
	return nil
}

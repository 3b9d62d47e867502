package repository

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned when no database client was constructed
// (missing configuration). No network call is attempted in that state.
var ErrStoreUnavailable = errors.New("database client not initialized")

// StoreError wraps a failed database operation with the operation name.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

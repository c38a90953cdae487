package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Idempotency errors
	ErrIdempotencyKeyReused  = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errors.New("idempotency in progress")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

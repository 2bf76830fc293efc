package errs

import "errors"

// Settlement error taxonomy shared by the domain, usecase and handler layers.
// Domain code wraps these with context; callers match with errors.Is.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNotFound      = errors.New("not found")

	// Promo code rejections
	ErrExpired              = errors.New("promo code expired or not yet valid")
	ErrUsageExceeded        = errors.New("promo code usage limit reached")
	ErrPerUserLimitExceeded = errors.New("promo code per-user limit reached")
	ErrCategoryMismatch     = errors.New("promo code does not apply to this category")

	// Lifecycle
	ErrInvalidState  = errors.New("invalid state for operation")
	ErrTerminalState = errors.New("entity is in a terminal state")

	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

package apperr

import "errors"

// Error kinds shared across services. Callers match with errors.Is and
// decide whether the condition is recoverable at the prompt (insufficient
// points, minimum claim) or aborts the whole transaction.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	ErrBelowMinimumClaim  = errors.New("claim below minimum points")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrOverpayment        = errors.New("overpayment not allowed")
	ErrPersistence        = errors.New("persistence failure")
)

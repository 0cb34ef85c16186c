package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Record errors
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrRefundNotFound  = errors.New("refund not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// View state errors
	ErrModalClosed     = errors.New("no modal is open")
	ErrNoDeletePending = errors.New("no delete confirmation pending")
	ErrRecordNotOnPage = errors.New("record not in current page")
	ErrPageOutOfRange  = errors.New("page out of range")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrRefetchFailed marks a fetch failure after a write already applied;
	// the write itself succeeded and must not be reported as failed.
	ErrRefetchFailed = errors.New("refetch after write failed")
)

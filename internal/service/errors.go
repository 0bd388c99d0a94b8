package service

import (
	"fmt"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// ErrNotFound is returned when a requested record does not exist or belongs
// to a different owner. Handlers map it to a 404.
var ErrNotFound = storage.ErrNotFound

// ValidationError reports a rejected input field. Handlers map it to a 422.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InsufficientFundsError is returned when an expense would overdraw the
// account and the caller has not confirmed. Handlers map it to a 409; the
// client retries the same request with confirm=true to proceed.
type InsufficientFundsError struct {
	Balance int64
	Amount  int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, requested %d", e.Balance, e.Amount)
}

// ReportError wraps a narrative generation failure so handlers can map it
// to a 502 without leaking upstream detail into other error paths.
type ReportError struct {
	Err error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report generation failed: %v", e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// RecurringTransaction is a monthly template the scheduler materializes
// into concrete transactions. LastExecuted is the idempotence guard: a
// template runs at most once per calendar month.
type RecurringTransaction struct {
	ID           uuid.UUID  `db:"id"`
	OwnerID      uuid.UUID  `db:"user_id"`
	AccountID    uuid.UUID  `db:"account_id"`
	CategoryID   *uuid.UUID `db:"category_id"`
	TxType       TxType     `db:"tx_type"`
	Amount       int64      `db:"amount"`
	RecurringDay int        `db:"recurring_day"`
	Merchant     string     `db:"merchant"`
	Memo         string     `db:"memo"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	IsActive     bool       `db:"is_active"`
	LastExecuted *time.Time `db:"last_executed"`
	CreatedAt    time.Time  `db:"created_at"`
}

// RecurringCreate is the input for creating a new recurring template.
type RecurringCreate struct {
	OwnerID      uuid.UUID
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       TxType
	Amount       int64
	RecurringDay int
	Merchant     string
	Memo         string
	StartDate    time.Time
	EndDate      *time.Time
	IsActive     bool
}

// RecurringUpdate rewrites a template's editable fields. A nil EndDate
// clears the column.
type RecurringUpdate struct {
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       TxType
	Amount       int64
	RecurringDay int
	Merchant     string
	Memo         string
	StartDate    time.Time
	EndDate      *time.Time
	IsActive     bool
}

// IRecurringTable defines the interface for recurring-template storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IRecurringTable --output mock_IRecurringTable.go
type IRecurringTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*RecurringTransaction, error)
	Insert(ctx context.Context, create *RecurringCreate) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *RecurringUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]*RecurringTransaction, error)
	SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) error

	// ListDue returns every user's active templates whose recurring_day is
	// on or before asOf's day-of-month and whose start_date has passed.
	// The <= catches templates missed on days the job did not run.
	ListDue(ctx context.Context, asOf time.Time) ([]*RecurringTransaction, error)

	// MarkExecuted stamps last_executed after a successful materialization.
	MarkExecuted(ctx context.Context, id uuid.UUID, executedOn time.Time) error
}

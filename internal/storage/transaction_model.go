package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// TxType is the direction of a transaction: money in or money out.
type TxType string

const (
	TxTypeIn  TxType = "IN"
	TxTypeOut TxType = "OUT"
)

// Valid reports whether t is one of the two known directions.
func (t TxType) Valid() bool {
	return t == TxTypeIn || t == TxTypeOut
}

// Signed returns amount with the sign this direction applies to a balance.
func (t TxType) Signed(amount int64) int64 {
	if t == TxTypeOut {
		return -amount
	}
	return amount
}

// Transaction represents a single ledger entry. BalanceAfter, when present,
// is the account balance snapshot taken right after this entry was applied;
// it is never recomputed when earlier entries change.
type Transaction struct {
	ID           uuid.UUID  `db:"id"`
	OwnerID      uuid.UUID  `db:"user_id"`
	AccountID    uuid.UUID  `db:"account_id"`
	CategoryID   *uuid.UUID `db:"category_id"`
	TxType       TxType     `db:"tx_type"`
	Amount       int64      `db:"amount"`
	BalanceAfter *int64     `db:"balance_after"`
	OccurredAt   time.Time  `db:"occurred_at"`
	Merchant     string     `db:"merchant"`
	Memo         string     `db:"memo"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID      uuid.UUID
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       TxType
	Amount       int64
	BalanceAfter *int64
	OccurredAt   time.Time
	Merchant     string
	Memo         string
}

// TransactionUpdate rewrites a transaction's mutable fields. The balance
// reconciliation protocol always recomputes the full set, so there are no
// partial fields here.
type TransactionUpdate struct {
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       TxType
	Amount       int64
	BalanceAfter *int64
	OccurredAt   time.Time
	Merchant     string
	Memo         string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	TxType     *TxType
	DateFrom   *time.Time
	DateTo     *time.Time
	Keyword    string
	Limit      int
	Offset     int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
}

package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Transaction represents a ledger entry in the service layer. BalanceAfter
// is the account balance recorded right after this entry was applied; it is
// nil for entries materialized by the recurring scheduler.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       storage.TxType
	Amount       int64
	Merchant     string
	Memo         string
	OccurredAt   time.Time
	BalanceAfter *int64
	CreatedAt    time.Time
}

// TransactionInput is the caller-supplied payload for creating or updating
// a ledger entry. Confirm acknowledges an insufficient-funds warning and
// lets an expense overdraw the account.
type TransactionInput struct {
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	TxType     storage.TxType
	Amount     int64
	Merchant   string
	Memo       string
	OccurredAt time.Time
	Confirm    bool
}

// TransactionQuery narrows and pages a ledger listing.
type TransactionQuery struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	TxType     *storage.TxType
	DateFrom   *time.Time
	DateTo     *time.Time
	Keyword    string
	Limit      int
	Offset     int
}

func transactionFromStorage(row *storage.Transaction) *Transaction {
	return &Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		CategoryID:   row.CategoryID,
		TxType:       row.TxType,
		Amount:       row.Amount,
		Merchant:     row.Merchant,
		Memo:         row.Memo,
		OccurredAt:   row.OccurredAt,
		BalanceAfter: row.BalanceAfter,
		CreatedAt:    row.CreatedAt,
	}
}

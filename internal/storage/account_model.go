package storage

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Account represents a bank account record. Balance is a signed whole-unit
// amount and may go negative; it is mutated only through AdjustBalance.
type Account struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       uuid.UUID `db:"user_id"`
	Name          string    `db:"name"`
	BankName      string    `db:"bank_name"`
	AccountNumber string    `db:"account_number"`
	Balance       int64     `db:"balance"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// MaskedAccountNumber renders the account number as "110-****-9012".
func (a *Account) MaskedAccountNumber() string {
	num := a.AccountNumber
	if len(num) <= 4 {
		return "****"
	}
	return num[:3] + "-" + strings.Repeat("*", len(num)-7) + "-" + num[len(num)-4:]
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	OwnerID       uuid.UUID
	Name          string
	BankName      string
	AccountNumber string
	Balance       int64
	IsActive      bool
}

// AccountUpdate is a partial update; unset fields are left untouched.
// Balance is deliberately absent: it moves only through AdjustBalance.
type AccountUpdate struct {
	Name          omit.Val[string]
	BankName      omit.Val[string]
	AccountNumber omit.Val[string]
	IsActive      omit.Val[bool]
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	ActiveOnly bool
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context, ownerID uuid.UUID, filter *AccountFilter) ([]*Account, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *AccountUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// AdjustBalance adds delta to the stored balance as a single
	// server-side increment, never a read-modify-write.
	AdjustBalance(ctx context.Context, ownerID, id uuid.UUID, delta int64) error
}

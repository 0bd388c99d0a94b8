package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Account represents an account in the service layer. AccountNumber carries
// the masked form; the raw number never leaves storage.
type Account struct {
	ID            uuid.UUID
	Name          string
	BankName      string
	AccountNumber string
	Balance       int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountInput is the caller-supplied payload for creating an account.
type AccountInput struct {
	Name          string
	BankName      string
	AccountNumber string
	Balance       int64
}

// AccountPatch updates an account's descriptive fields. Nil fields are left
// untouched. Balance is deliberately absent: it only moves through the
// ledger.
type AccountPatch struct {
	Name          *string
	BankName      *string
	AccountNumber *string
	IsActive      *bool
}

func accountFromStorage(row *storage.Account) *Account {
	return &Account{
		ID:            row.ID,
		Name:          row.Name,
		BankName:      row.BankName,
		AccountNumber: row.MaskedAccountNumber(),
		Balance:       row.Balance,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func (p *AccountPatch) toStorage() *storage.AccountUpdate {
	update := &storage.AccountUpdate{}
	if p.Name != nil {
		update.Name = omit.From(*p.Name)
	}
	if p.BankName != nil {
		update.BankName = omit.From(*p.BankName)
	}
	if p.AccountNumber != nil {
		update.AccountNumber = omit.From(*p.AccountNumber)
	}
	if p.IsActive != nil {
		update.IsActive = omit.From(*p.IsActive)
	}
	return update
}

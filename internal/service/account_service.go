package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// CreateAccount creates a new account for the owner and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, input *AccountInput) (uuid.UUID, error) {
	if input.Name == "" {
		return uuid.Nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if input.Balance < 0 {
		return uuid.Nil, &ValidationError{Field: "balance", Message: "must not be negative"}
	}

	// New accounts start active; deactivation is an explicit patch.
	return s.storage.Accounts.Insert(ctx, &storage.AccountCreate{
		OwnerID:       ownerID,
		Name:          input.Name,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Balance:       input.Balance,
		IsActive:      true,
	})
}

// GetAccount retrieves one of the owner's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return accountFromStorage(row), nil
}

// ListAccounts returns the owner's accounts, optionally only active ones.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*Account, error) {
	rows, err := s.storage.Accounts.List(ctx, ownerID, &storage.AccountFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}

	accounts := make([]*Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, accountFromStorage(row))
	}
	return accounts, nil
}

// UpdateAccount applies a partial update and returns the updated account.
func (s *AccountService) UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, patch *AccountPatch) (*Account, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}

	if err := s.storage.Accounts.Update(ctx, ownerID, id, patch.toStorage()); err != nil {
		return nil, err
	}
	return s.GetAccount(ctx, ownerID, id)
}

// DeleteAccount removes an account. Its transactions go with it.
func (s *AccountService) DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.storage.Accounts.Delete(ctx, ownerID, id)
}

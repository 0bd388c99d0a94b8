package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

const defaultTransactionLimit = 20

// TransactionService handles ledger business logic. Every write keeps the
// owning account's balance consistent with the ledger: creating an entry
// applies its signed amount, deleting reverses it, and updating reverses
// the old entry before applying the new one.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

func (s *TransactionService) validateInput(ctx context.Context, input *TransactionInput) error {
	if !input.TxType.Valid() {
		return &ValidationError{Field: "tx_type", Message: "must be IN or OUT"}
	}
	if input.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if input.OccurredAt.IsZero() {
		return &ValidationError{Field: "occurred_at", Message: "must be set"}
	}

	if input.CategoryID != nil {
		category, err := s.storage.Categories.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if err == storage.ErrNotFound {
				return &ValidationError{Field: "category_id", Message: "unknown category"}
			}
			return err
		}
		if category.CatType != storage.CatTypeCommon && string(category.CatType) != string(input.TxType) {
			return &ValidationError{Field: "category_id", Message: "category direction does not match tx_type"}
		}
	}
	return nil
}

// CreateTransaction records a new ledger entry and applies it to the
// account balance. An expense that would overdraw the account is rejected
// with *InsufficientFundsError unless input.Confirm is set; overdrawing is
// allowed once confirmed.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input *TransactionInput) (*Transaction, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	account, err := s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.TxType == storage.TxTypeOut && account.Balance < input.Amount && !input.Confirm {
		return nil, &InsufficientFundsError{Balance: account.Balance, Amount: input.Amount}
	}

	delta := input.TxType.Signed(input.Amount)
	if err := s.storage.Accounts.AdjustBalance(ctx, ownerID, input.AccountID, delta); err != nil {
		return nil, fmt.Errorf("applying balance: %w", err)
	}

	// Snapshot the balance after this entry. Concurrent writers can move it
	// between the adjust and the read; the snapshot reflects what the read
	// observed, never a locally computed value.
	account, err = s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID)
	if err != nil {
		s.compensate(ctx, ownerID, input.AccountID, -delta)
		return nil, err
	}
	balanceAfter := account.Balance

	id, err := s.storage.Transactions.Insert(ctx, &storage.TransactionCreate{
		OwnerID:      ownerID,
		AccountID:    input.AccountID,
		CategoryID:   input.CategoryID,
		TxType:       input.TxType,
		Amount:       input.Amount,
		BalanceAfter: &balanceAfter,
		OccurredAt:   input.OccurredAt,
		Merchant:     input.Merchant,
		Memo:         input.Memo,
	})
	if err != nil {
		s.compensate(ctx, ownerID, input.AccountID, -delta)
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}

	return s.GetTransaction(ctx, ownerID, id)
}

// GetTransaction retrieves one of the owner's ledger entries by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// ListTransactions returns the owner's ledger entries, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, query *TransactionQuery) ([]*Transaction, error) {
	limit := defaultTransactionLimit
	offset := 0
	filter := &storage.TransactionFilter{}
	if query != nil {
		if query.Limit > 0 {
			limit = query.Limit
		}
		offset = query.Offset
		filter.AccountID = query.AccountID
		filter.CategoryID = query.CategoryID
		filter.TxType = query.TxType
		filter.DateFrom = query.DateFrom
		filter.DateTo = query.DateTo
		filter.Keyword = query.Keyword
	}
	filter.Limit = limit
	filter.Offset = offset

	rows, err := s.storage.Transactions.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	transactions := make([]*Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, transactionFromStorage(row))
	}
	return transactions, nil
}

// UpdateTransaction rewrites a ledger entry. The old entry's effect is
// reversed first, then the new values are applied, possibly to a different
// account. If the rewrite would overdraw the target account and the caller
// has not confirmed, the old entry is restored untouched.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, input *TransactionInput) (*Transaction, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	old, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	// Resolve the target account before touching any balance so a bad
	// account ID cannot leave the old entry half reversed.
	if _, err := s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID); err != nil {
		return nil, err
	}

	oldDelta := old.TxType.Signed(old.Amount)
	if err := s.storage.Accounts.AdjustBalance(ctx, ownerID, old.AccountID, -oldDelta); err != nil {
		return nil, fmt.Errorf("reversing balance: %w", err)
	}

	// The overdraft check runs against the target balance as it stands with
	// the old entry already backed out. Moving an expense within one account
	// therefore only warns about the net change.
	target, err := s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID)
	if err != nil {
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return nil, err
	}
	if input.TxType == storage.TxTypeOut && target.Balance < input.Amount && !input.Confirm {
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return nil, &InsufficientFundsError{Balance: target.Balance, Amount: input.Amount}
	}

	newDelta := input.TxType.Signed(input.Amount)
	if err := s.storage.Accounts.AdjustBalance(ctx, ownerID, input.AccountID, newDelta); err != nil {
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return nil, fmt.Errorf("applying balance: %w", err)
	}

	target, err = s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID)
	if err != nil {
		s.compensate(ctx, ownerID, input.AccountID, -newDelta)
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return nil, err
	}
	balanceAfter := target.Balance

	if err := s.storage.Transactions.Update(ctx, ownerID, id, &storage.TransactionUpdate{
		AccountID:    input.AccountID,
		CategoryID:   input.CategoryID,
		TxType:       input.TxType,
		Amount:       input.Amount,
		BalanceAfter: &balanceAfter,
		OccurredAt:   input.OccurredAt,
		Merchant:     input.Merchant,
		Memo:         input.Memo,
	}); err != nil {
		// Unwind both sides: the row still carries the old values, so the
		// old delta must stand and the new one must not.
		s.compensate(ctx, ownerID, input.AccountID, -newDelta)
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return nil, fmt.Errorf("updating transaction: %w", err)
	}

	return s.GetTransaction(ctx, ownerID, id)
}

// DeleteTransaction removes a ledger entry and reverses its effect on the
// account balance. Deleting an income entry may drive the balance negative;
// that is accepted, not blocked.
func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	old, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	oldDelta := old.TxType.Signed(old.Amount)
	if err := s.storage.Accounts.AdjustBalance(ctx, ownerID, old.AccountID, -oldDelta); err != nil {
		return fmt.Errorf("reversing balance: %w", err)
	}

	if err := s.storage.Transactions.Delete(ctx, ownerID, id); err != nil {
		s.compensate(ctx, ownerID, old.AccountID, oldDelta)
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// compensate undoes a prior balance adjustment after a later step failed.
// A failure here leaves the balance off by delta until an operator
// reconciles it, so it is logged loudly.
func (s *TransactionService) compensate(ctx context.Context, ownerID, accountID uuid.UUID, delta int64) {
	if err := s.storage.Accounts.AdjustBalance(ctx, ownerID, accountID, delta); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"delta":      delta,
		}).WithError(err).Error("failed to roll back balance adjustment")
	}
}

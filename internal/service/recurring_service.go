package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

const recurringMemoPrefix = "[recurring]"

// RecurringService manages monthly templates and materializes them into
// ledger entries. The clock is injected so the daily run can be tested
// against fixed dates.
type RecurringService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(store *storage.Storage, now func() time.Time) *RecurringService {
	return &RecurringService{storage: store, now: now}
}

// RunResult summarizes one scheduler pass.
type RunResult struct {
	Created int
	Skipped int
	Failed  int
}

// RecurringInput is the caller-supplied payload for creating or updating a
// recurring template.
type RecurringInput struct {
	AccountID    uuid.UUID
	CategoryID   *uuid.UUID
	TxType       storage.TxType
	Amount       int64
	RecurringDay int
	Merchant     string
	Memo         string
	StartDate    time.Time
	EndDate      *time.Time
	IsActive     bool
}

func (s *RecurringService) validateInput(ctx context.Context, ownerID uuid.UUID, input *RecurringInput) error {
	if !input.TxType.Valid() {
		return &ValidationError{Field: "tx_type", Message: "must be IN or OUT"}
	}
	if input.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if input.RecurringDay < 1 || input.RecurringDay > 31 {
		return &ValidationError{Field: "recurring_day", Message: "must be between 1 and 31"}
	}
	if input.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Message: "must be set"}
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return &ValidationError{Field: "end_date", Message: "must not precede start_date"}
	}

	if _, err := s.storage.Accounts.FindByID(ctx, ownerID, input.AccountID); err != nil {
		return err
	}
	return nil
}

// CreateRecurring registers a new template and returns it.
func (s *RecurringService) CreateRecurring(ctx context.Context, ownerID uuid.UUID, input *RecurringInput) (*storage.RecurringTransaction, error) {
	if err := s.validateInput(ctx, ownerID, input); err != nil {
		return nil, err
	}

	id, err := s.storage.Recurrings.Insert(ctx, &storage.RecurringCreate{
		OwnerID:      ownerID,
		AccountID:    input.AccountID,
		CategoryID:   input.CategoryID,
		TxType:       input.TxType,
		Amount:       input.Amount,
		RecurringDay: input.RecurringDay,
		Merchant:     input.Merchant,
		Memo:         input.Memo,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     input.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return s.storage.Recurrings.FindByID(ctx, ownerID, id)
}

// ListRecurring returns the owner's templates.
func (s *RecurringService) ListRecurring(ctx context.Context, ownerID uuid.UUID) ([]*storage.RecurringTransaction, error) {
	return s.storage.Recurrings.List(ctx, ownerID)
}

// UpdateRecurring rewrites a template and returns the updated row.
func (s *RecurringService) UpdateRecurring(ctx context.Context, ownerID, id uuid.UUID, input *RecurringInput) (*storage.RecurringTransaction, error) {
	if err := s.validateInput(ctx, ownerID, input); err != nil {
		return nil, err
	}

	if err := s.storage.Recurrings.Update(ctx, ownerID, id, &storage.RecurringUpdate{
		AccountID:    input.AccountID,
		CategoryID:   input.CategoryID,
		TxType:       input.TxType,
		Amount:       input.Amount,
		RecurringDay: input.RecurringDay,
		Merchant:     input.Merchant,
		Memo:         input.Memo,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     input.IsActive,
	}); err != nil {
		return nil, err
	}
	return s.storage.Recurrings.FindByID(ctx, ownerID, id)
}

// DeleteRecurring removes a template. Ledger entries it already produced
// stay untouched.
func (s *RecurringService) DeleteRecurring(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.storage.Recurrings.Delete(ctx, ownerID, id)
}

// ToggleRecurring flips a template's active flag and returns the new state.
func (s *RecurringService) ToggleRecurring(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	row, err := s.storage.Recurrings.FindByID(ctx, ownerID, id)
	if err != nil {
		return false, err
	}

	active := !row.IsActive
	if err := s.storage.Recurrings.SetActive(ctx, ownerID, id, active); err != nil {
		return false, err
	}
	return active, nil
}

// RunDue materializes every template that is due as of the injected clock.
// The pass is idempotent within a calendar month: a template whose
// last_executed stamp falls in the current month is skipped, so the job can
// run daily (or be retried) without duplicating entries. Expired templates
// are deactivated instead of executed. A failing template is logged and
// counted; it never aborts the pass.
func (s *RecurringService) RunDue(ctx context.Context) (*RunResult, error) {
	asOf := s.now()
	due, err := s.storage.Recurrings.ListDue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	result := &RunResult{}
	for _, tpl := range due {
		log := logrus.WithFields(logrus.Fields{
			"recurring_id": tpl.ID,
			"account_id":   tpl.AccountID,
		})

		if tpl.EndDate != nil && tpl.EndDate.Before(asOf) {
			if err := s.storage.Recurrings.SetActive(ctx, tpl.OwnerID, tpl.ID, false); err != nil {
				log.WithError(err).Warn("failed to deactivate expired template")
				result.Failed++
				continue
			}
			result.Skipped++
			continue
		}

		if tpl.LastExecuted != nil && sameMonth(*tpl.LastExecuted, asOf) {
			result.Skipped++
			continue
		}

		if err := s.materialize(ctx, tpl, asOf); err != nil {
			log.WithError(err).Warn("failed to materialize recurring template")
			result.Failed++
			continue
		}
		result.Created++
	}

	logrus.WithFields(logrus.Fields{
		"created": result.Created,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("recurring run finished")
	return result, nil
}

// materialize creates the ledger entry for one due template and applies its
// amount to the account. Scheduler entries are applied unconditionally:
// there is no one present to confirm an overdraft, and skipping rent
// because the balance is low would be worse than a negative number.
func (s *RecurringService) materialize(ctx context.Context, tpl *storage.RecurringTransaction, asOf time.Time) error {
	memo := recurringMemoPrefix
	if tpl.Memo != "" {
		memo = recurringMemoPrefix + " " + tpl.Memo
	}

	// No balance snapshot here: the entry is not tied to a user-observed
	// balance the way interactive writes are.
	if _, err := s.storage.Transactions.Insert(ctx, &storage.TransactionCreate{
		OwnerID:    tpl.OwnerID,
		AccountID:  tpl.AccountID,
		CategoryID: tpl.CategoryID,
		TxType:     tpl.TxType,
		Amount:     tpl.Amount,
		OccurredAt: asOf,
		Merchant:   tpl.Merchant,
		Memo:       memo,
	}); err != nil {
		return err
	}

	if err := s.storage.Accounts.AdjustBalance(ctx, tpl.OwnerID, tpl.AccountID, tpl.TxType.Signed(tpl.Amount)); err != nil {
		return err
	}

	return s.storage.Recurrings.MarkExecuted(ctx, tpl.ID, asOf)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

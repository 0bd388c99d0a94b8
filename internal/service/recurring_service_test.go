package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

func newTestRecurringService(t *testing.T, now time.Time) (*RecurringService, *storage.MockIAccountTable, *storage.MockITransactionTable, *storage.MockIRecurringTable) {
	t.Helper()
	mockAccounts := storage.NewMockIAccountTable(t)
	mockTransactions := storage.NewMockITransactionTable(t)
	mockRecurrings := storage.NewMockIRecurringTable(t)
	store := &storage.Storage{
		Accounts:     mockAccounts,
		Transactions: mockTransactions,
		Recurrings:   mockRecurrings,
	}
	svc := NewRecurringService(store, func() time.Time { return now })
	return svc, mockAccounts, mockTransactions, mockRecurrings
}

func testTemplate(ownerID, accountID uuid.UUID, memo string) *storage.RecurringTransaction {
	return &storage.RecurringTransaction{
		ID:           uuid.Must(uuid.NewV4()),
		OwnerID:      ownerID,
		AccountID:    accountID,
		TxType:       storage.TxTypeOut,
		Amount:       650_000,
		RecurringDay: 25,
		Merchant:     "Landlord",
		Memo:         memo,
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

// -- RunDue tests --

func TestRunDue_MaterializesTemplate(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, mockAccounts, mockTransactions, mockRecurrings := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	tpl := testTemplate(ownerID, accountID, "march rent")

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{tpl}, nil).Once()

	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *storage.TransactionCreate) bool {
		return c.OwnerID == ownerID &&
			c.AccountID == accountID &&
			c.Amount == 650_000 &&
			c.Memo == "[recurring] march rent" &&
			c.BalanceAfter == nil &&
			c.OccurredAt.Equal(now)
	})).Return(uuid.Must(uuid.NewV4()), nil).Once()

	// Applied unconditionally, even if the account would go negative.
	mockAccounts.EXPECT().AdjustBalance(mock.Anything, ownerID, accountID, int64(-650_000)).
		Return(nil).Once()
	mockRecurrings.EXPECT().MarkExecuted(mock.Anything, tpl.ID, now).Return(nil).Once()

	result, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &RunResult{Created: 1}, result)
}

func TestRunDue_SkipsAlreadyExecutedThisMonth(t *testing.T) {
	now := time.Date(2026, 3, 26, 6, 0, 0, 0, time.UTC)
	svc, _, _, mockRecurrings := newTestRecurringService(t, now)

	tpl := testTemplate(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), "rent")
	executed := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	tpl.LastExecuted = &executed

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{tpl}, nil).Once()

	result, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &RunResult{Skipped: 1}, result)
}

func TestRunDue_RunsAgainNextMonth(t *testing.T) {
	now := time.Date(2026, 4, 25, 6, 0, 0, 0, time.UTC)
	svc, mockAccounts, mockTransactions, mockRecurrings := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	tpl := testTemplate(ownerID, accountID, "rent")
	executed := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	tpl.LastExecuted = &executed

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{tpl}, nil).Once()
	mockTransactions.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Must(uuid.NewV4()), nil).Once()
	mockAccounts.EXPECT().AdjustBalance(mock.Anything, ownerID, accountID, int64(-650_000)).
		Return(nil).Once()
	mockRecurrings.EXPECT().MarkExecuted(mock.Anything, tpl.ID, now).Return(nil).Once()

	result, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestRunDue_DeactivatesExpiredTemplate(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, _, _, mockRecurrings := newTestRecurringService(t, now)

	tpl := testTemplate(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), "old gym")
	endDate := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	tpl.EndDate = &endDate

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{tpl}, nil).Once()
	mockRecurrings.EXPECT().SetActive(mock.Anything, tpl.OwnerID, tpl.ID, false).
		Return(nil).Once()

	result, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &RunResult{Skipped: 1}, result)
}

func TestRunDue_MemoFallback(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, mockAccounts, mockTransactions, mockRecurrings := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	tpl := testTemplate(ownerID, accountID, "")

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{tpl}, nil).Once()
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *storage.TransactionCreate) bool {
		return c.Memo == "[recurring]"
	})).Return(uuid.Must(uuid.NewV4()), nil).Once()
	mockAccounts.EXPECT().AdjustBalance(mock.Anything, ownerID, accountID, int64(-650_000)).
		Return(nil).Once()
	mockRecurrings.EXPECT().MarkExecuted(mock.Anything, tpl.ID, now).Return(nil).Once()

	_, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
}

func TestRunDue_FailingTemplateDoesNotAbortPass(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, mockAccounts, mockTransactions, mockRecurrings := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	brokenAccount := uuid.Must(uuid.NewV4())
	healthyAccount := uuid.Must(uuid.NewV4())
	broken := testTemplate(ownerID, brokenAccount, "broken")
	healthy := testTemplate(ownerID, healthyAccount, "healthy")

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return([]*storage.RecurringTransaction{broken, healthy}, nil).Once()

	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *storage.TransactionCreate) bool {
		return c.AccountID == brokenAccount
	})).Return(uuid.Nil, errors.New("connection refused")).Once()

	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *storage.TransactionCreate) bool {
		return c.AccountID == healthyAccount
	})).Return(uuid.Must(uuid.NewV4()), nil).Once()
	mockAccounts.EXPECT().AdjustBalance(mock.Anything, ownerID, healthyAccount, int64(-650_000)).
		Return(nil).Once()
	mockRecurrings.EXPECT().MarkExecuted(mock.Anything, healthy.ID, now).Return(nil).Once()

	result, err := svc.RunDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &RunResult{Created: 1, Failed: 1}, result)
}

func TestRunDue_ListError(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, _, _, mockRecurrings := newTestRecurringService(t, now)

	mockRecurrings.EXPECT().ListDue(mock.Anything, now).
		Return(nil, errors.New("database unavailable")).Once()

	result, err := svc.RunDue(context.Background())

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "database unavailable")
}

// -- CRUD tests --

func TestCreateRecurring_ValidatesDay(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, _, _, _ := newTestRecurringService(t, now)

	_, err := svc.CreateRecurring(context.Background(), uuid.Must(uuid.NewV4()), &RecurringInput{
		AccountID:    uuid.Must(uuid.NewV4()),
		TxType:       storage.TxTypeOut,
		Amount:       10_000,
		RecurringDay: 32,
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "recurring_day", validation.Field)
}

func TestCreateRecurring_UnknownAccount(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, mockAccounts, _, _ := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).
		Return(nil, storage.ErrNotFound).Once()

	_, err := svc.CreateRecurring(context.Background(), ownerID, &RecurringInput{
		AccountID:    accountID,
		TxType:       storage.TxTypeOut,
		Amount:       10_000,
		RecurringDay: 1,
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleRecurring_FlipsState(t *testing.T) {
	now := time.Date(2026, 3, 25, 6, 0, 0, 0, time.UTC)
	svc, _, _, mockRecurrings := newTestRecurringService(t, now)

	ownerID := uuid.Must(uuid.NewV4())
	tpl := testTemplate(ownerID, uuid.Must(uuid.NewV4()), "rent")

	mockRecurrings.EXPECT().FindByID(mock.Anything, ownerID, tpl.ID).Return(tpl, nil).Once()
	mockRecurrings.EXPECT().SetActive(mock.Anything, ownerID, tpl.ID, false).Return(nil).Once()

	active, err := svc.ToggleRecurring(context.Background(), ownerID, tpl.ID)

	assert.NoError(t, err)
	assert.False(t, active)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

func newAccountTestService(t *testing.T) (*AccountService, *storage.MockIAccountTable) {
	t.Helper()
	mockTable := storage.NewMockIAccountTable(t)
	store := &storage.Storage{Accounts: mockTable}
	svc := NewAccountService(store)
	return svc, mockTable
}

// -- CreateAccount tests --

func TestCreateAccount_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *storage.AccountCreate) bool {
		return c.OwnerID == ownerID &&
			c.Name == "Salary account" &&
			c.BankName == "Shinhan" &&
			c.Balance == 1_000_000 &&
			c.IsActive
	})).Return(expectedID, nil)

	id, err := svc.CreateAccount(context.Background(), ownerID, &AccountInput{
		Name:          "Salary account",
		BankName:      "Shinhan",
		AccountNumber: "110-1234-9012",
		Balance:       1_000_000,
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateAccount_EmptyName(t *testing.T) {
	svc, _ := newAccountTestService(t)

	id, err := svc.CreateAccount(context.Background(), uuid.Must(uuid.NewV4()), &AccountInput{
		Balance: 100,
	})

	assert.Equal(t, uuid.Nil, id)
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)
}

func TestCreateAccount_NegativeBalance(t *testing.T) {
	svc, _ := newAccountTestService(t)

	_, err := svc.CreateAccount(context.Background(), uuid.Must(uuid.NewV4()), &AccountInput{
		Name:    "Checking",
		Balance: -1,
	})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "balance", validation.Field)
}

// -- GetAccount tests --

func TestGetAccount_MasksAccountNumber(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().FindByID(mock.Anything, ownerID, accountID).
		Return(&storage.Account{
			ID:            accountID,
			OwnerID:       ownerID,
			Name:          "Checking",
			AccountNumber: "110-1234-9012",
			Balance:       700_000,
		}, nil)

	account, err := svc.GetAccount(context.Background(), ownerID, accountID)

	assert.NoError(t, err)
	assert.Equal(t, "110-****-9012", account.AccountNumber)
	assert.Equal(t, int64(700_000), account.Balance)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().FindByID(mock.Anything, ownerID, accountID).
		Return(nil, storage.ErrNotFound)

	account, err := svc.GetAccount(context.Background(), ownerID, accountID)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- ListAccounts tests --

func TestListAccounts_ActiveOnly(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().List(mock.Anything, ownerID, mock.MatchedBy(func(f *storage.AccountFilter) bool {
		return f.ActiveOnly
	})).Return([]*storage.Account{
		{ID: uuid.Must(uuid.NewV4()), OwnerID: ownerID, Name: "Checking", IsActive: true},
	}, nil)

	accounts, err := svc.ListAccounts(context.Background(), ownerID, true)

	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "Checking", accounts[0].Name)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	accounts, err := svc.ListAccounts(context.Background(), uuid.Must(uuid.NewV4()), false)

	assert.Nil(t, accounts)
	assert.ErrorContains(t, err, "database unavailable")
}

// -- UpdateAccount tests --

func TestUpdateAccount_PartialPatch(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	newName := "Emergency fund"

	mockTable.EXPECT().Update(mock.Anything, ownerID, accountID, mock.MatchedBy(func(u *storage.AccountUpdate) bool {
		name, nameSet := u.Name.Get()
		_, bankSet := u.BankName.Get()
		_, activeSet := u.IsActive.Get()
		return nameSet && name == newName && !bankSet && !activeSet
	})).Return(nil)
	mockTable.EXPECT().FindByID(mock.Anything, ownerID, accountID).
		Return(&storage.Account{ID: accountID, OwnerID: ownerID, Name: newName}, nil)

	account, err := svc.UpdateAccount(context.Background(), ownerID, accountID, &AccountPatch{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, newName, account.Name)
}

func TestUpdateAccount_EmptyNameRejected(t *testing.T) {
	svc, _ := newAccountTestService(t)

	empty := ""
	account, err := svc.UpdateAccount(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), &AccountPatch{Name: &empty})

	assert.Nil(t, account)
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

// -- DeleteAccount tests --

func TestDeleteAccount_NotFound(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Delete(mock.Anything, ownerID, accountID).
		Return(storage.ErrNotFound)

	err := svc.DeleteAccount(context.Background(), ownerID, accountID)

	assert.ErrorIs(t, err, ErrNotFound)
}

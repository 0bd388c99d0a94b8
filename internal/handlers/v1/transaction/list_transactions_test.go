package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, ownerID uuid.UUID, query *service.TransactionQuery) ([]*service.Transaction, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.Transaction), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_AllFilters(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	query, err := parseListTransactionsInput(&ListTransactionsInput{
		AccountID:  accountID.String(),
		CategoryID: categoryID.String(),
		TxType:     "OUT",
		DateFrom:   "2026-01-01",
		DateTo:     "2026-01-31",
		Keyword:    "coffee",
		Limit:      50,
		Offset:     100,
	})
	assert.NoError(t, err)
	assert.Equal(t, accountID, *query.AccountID)
	assert.Equal(t, categoryID, *query.CategoryID)
	assert.Equal(t, storage.TxTypeOut, *query.TxType)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *query.DateFrom)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *query.DateTo)
	assert.Equal(t, "coffee", query.Keyword)
	assert.Equal(t, 50, query.Limit)
	assert.Equal(t, 100, query.Offset)
}

func TestParseListTransactionsInput_Empty(t *testing.T) {
	query, err := parseListTransactionsInput(&ListTransactionsInput{})
	assert.NoError(t, err)
	assert.Nil(t, query.AccountID)
	assert.Nil(t, query.CategoryID)
	assert.Nil(t, query.TxType)
	assert.Nil(t, query.DateFrom)
	assert.Nil(t, query.DateTo)
}

func TestParseListTransactionsInput_BadAccountID(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{AccountID: "nope"})
	assert.Error(t, err)
}

func TestParseListTransactionsInput_BadDateFrom(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{DateFrom: "01-01-2026"})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	balanceAfter := int64(880000)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, ownerID, mock.Anything).
		Return([]*service.Transaction{
			{
				ID:           uuid.Must(uuid.NewV4()),
				AccountID:    accountID,
				TxType:       "OUT",
				Amount:       120000,
				Merchant:     "Grocer",
				OccurredAt:   time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
				BalanceAfter: &balanceAfter,
				CreatedAt:    time.Date(2026, 2, 3, 18, 0, 0, 0, time.UTC),
			},
		}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "Grocer", body.Transactions[0].Merchant)
	assert.Equal(t, "2026-02-03", body.Transactions[0].OccurredAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_PassesQueryFilters(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, ownerID, mock.MatchedBy(func(q *service.TransactionQuery) bool {
		return q.AccountID != nil && *q.AccountID == accountID &&
			q.TxType != nil && *q.TxType == storage.TxTypeIn &&
			q.Keyword == "salary" && q.Limit == 5
	})).Return([]*service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get(
		"/v1/transaction?accountId="+accountID.String()+"&txType=IN&keyword=salary&limit=5",
		ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyResult(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, ownerID, mock.Anything).
		Return([]*service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_LimitTooLarge(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionLister)

	// Huma's maximum:"100" schema validation rejects this before the handler runs.
	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction?limit=500", ownerHeader(ownerID))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

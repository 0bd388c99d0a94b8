package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input *service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func ownerHeader(ownerID uuid.UUID) string {
	return "X-User-ID: " + ownerID.String()
}

func validBody(accountID uuid.UUID) TransactionBody {
	return TransactionBody{
		AccountID:  accountID.String(),
		TxType:     "OUT",
		Amount:     350000,
		Merchant:   "Blue Bottle",
		OccurredAt: "2026-03-14",
	}
}

// -- parseTransactionBody unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseTransactionBody_ValidInput(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	parsed, err := parseTransactionBody(&TransactionBody{
		AccountID:  accountID.String(),
		CategoryID: categoryID.String(),
		TxType:     "OUT",
		Amount:     120000,
		Merchant:   "Grocer",
		Memo:       "weekly shop",
		OccurredAt: "2026-03-14",
		Confirm:    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, accountID, parsed.AccountID)
	assert.Equal(t, categoryID, *parsed.CategoryID)
	assert.Equal(t, int64(120000), parsed.Amount)
	assert.Equal(t, "Grocer", parsed.Merchant)
	assert.True(t, parsed.Confirm)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), parsed.OccurredAt)
}

func TestParseTransactionBody_NoCategory(t *testing.T) {
	parsed, err := parseTransactionBody(&TransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		TxType:     "IN",
		Amount:     5000,
		OccurredAt: "2026-01-02",
	})
	assert.NoError(t, err)
	assert.Nil(t, parsed.CategoryID)
}

func TestParseTransactionBody_BadDate(t *testing.T) {
	_, err := parseTransactionBody(&TransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		TxType:     "IN",
		Amount:     5000,
		OccurredAt: "14/03/2026",
	})
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	balanceAfter := int64(650000)

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, ownerID, mock.MatchedBy(func(in *service.TransactionInput) bool {
		return in.AccountID == accountID && in.Amount == 350000 && in.TxType == "OUT" && !in.Confirm
	})).Return(&service.Transaction{
		ID:           txID,
		AccountID:    accountID,
		TxType:       "OUT",
		Amount:       350000,
		Merchant:     "Blue Bottle",
		OccurredAt:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		BalanceAfter: &balanceAfter,
		CreatedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), validBody(accountID))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "2026-03-14", body.OccurredAt)
	assert.NotNil(t, body.BalanceAfter)
	assert.Equal(t, int64(650000), *body.BalanceAfter)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InsufficientFunds(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).
		Return(nil, &service.InsufficientFundsError{Balance: 100000, Amount: 350000})

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), validBody(accountID))

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).
		Return(nil, &service.ValidationError{Field: "category_id", Message: "unknown category"})

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), validBody(accountID))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingOwnerHeader(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's required header check rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_BadOwnerHeader(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction",
		"X-User-ID: not-a-uuid", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_BadTxType(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)

	// Huma's enum:"IN,OUT" schema validation rejects this before the handler runs.
	body := validBody(uuid.Must(uuid.NewV4()))
	body.TxType = "TRANSFER"
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ZeroAmount(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)

	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = 0
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_BadDate(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)

	body := validBody(uuid.Must(uuid.NewV4()))
	body.OccurredAt = "not-a-date"
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", ownerHeader(ownerID), validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

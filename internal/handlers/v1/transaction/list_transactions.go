package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID     string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	AccountID  string `query:"accountId" doc:"Filter by account UUID"`
	CategoryID string `query:"categoryId" doc:"Filter by category UUID"`
	TxType     string `query:"txType" enum:"IN,OUT," doc:"Filter by direction"`
	DateFrom   string `query:"dateFrom" doc:"Earliest transaction date, YYYY-MM-DD"`
	DateTo     string `query:"dateTo" doc:"Latest transaction date, YYYY-MM-DD"`
	Keyword    string `query:"keyword" doc:"Substring match against memo and merchant"`
	Limit      int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
	Offset     int    `query:"offset" minimum:"0" doc:"Rows to skip"`
}

// ListTransactionsResponse is the response body for listing transactions.
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions" doc:"Ledger entries, newest first"`
}

// ListTransactionsOutput is the response for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponse
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, query *service.TransactionQuery) ([]*service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionQuery, error) {
	query := &service.TransactionQuery{
		Keyword: input.Keyword,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}

	if input.AccountID != "" {
		id, err := uuid.FromString(input.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
		}
		query.AccountID = &id
	}
	if input.CategoryID != "" {
		id, err := uuid.FromString(input.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		query.CategoryID = &id
	}
	if input.TxType != "" {
		txType := storage.TxType(input.TxType)
		if !txType.Valid() {
			return nil, huma.NewError(http.StatusBadRequest, "txType must be IN or OUT", nil)
		}
		query.TxType = &txType
	}
	if input.DateFrom != "" {
		from, err := time.Parse(dateLayout, input.DateFrom)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dateFrom, expected YYYY-MM-DD", err)
		}
		query.DateFrom = &from
	}
	if input.DateTo != "" {
		to, err := time.Parse(dateLayout, input.DateTo)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid dateTo, expected YYYY-MM-DD", err)
		}
		query.DateTo = &to
	}

	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	rows, err := h.TransactionService.ListTransactions(ctx, ownerID, query)
	if err != nil {
		return nil, request.ServiceError(err, "failed to list transactions")
	}

	converted := make([]Transaction, 0, len(rows))
	for _, tx := range rows {
		converted = append(converted, fromService(tx))
	}
	return &ListTransactionsOutput{Body: ListTransactionsResponse{Transactions: converted}}, nil
}

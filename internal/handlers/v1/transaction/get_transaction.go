package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the response for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching a single transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, request.ServiceError(err, "failed to get transaction")
	}
	return &GetTransactionOutput{Body: fromService(tx)}, nil
}

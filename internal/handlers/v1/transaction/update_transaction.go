package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body   TransactionBody
}

// UpdateTransactionOutput is the response for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, input *service.TransactionInput) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update a transaction",
		Description: "Rewrites a ledger entry. The old entry's balance effect is reversed before the new one is applied; a rewrite that would overdraw the target account returns 409 until retried with confirm=true.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	parsed, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, ownerID, id, parsed)
	if err != nil {
		return nil, request.ServiceError(err, "failed to update transaction")
	}
	return &UpdateTransactionOutput{Body: fromService(tx)}, nil
}

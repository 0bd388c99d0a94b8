package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the response for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete a transaction",
		Description: "Removes a ledger entry and reverses its effect on the account balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	if err := h.TransactionService.DeleteTransaction(ctx, ownerID, id); err != nil {
		return nil, request.ServiceError(err, "failed to delete transaction")
	}
	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}

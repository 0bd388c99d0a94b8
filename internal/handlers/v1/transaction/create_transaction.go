package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   TransactionBody
}

// CreateTransactionOutput is the response for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, input *service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create a transaction",
		Description: "Records a ledger entry and applies it to the account balance. An expense that would overdraw the account returns 409 until the request is retried with confirm=true.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	parsed, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	tx, err := h.TransactionService.CreateTransaction(ctx, ownerID, parsed)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, request.ServiceError(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", tx.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(tx),
	}, nil
}

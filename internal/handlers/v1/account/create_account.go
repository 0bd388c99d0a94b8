package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name          string `json:"name" minLength:"1" doc:"Account name"`
	BankName      string `json:"bankName,omitempty" doc:"Bank or institution name"`
	AccountNumber string `json:"accountNumber,omitempty" doc:"Account number, stored raw and served masked"`
	Balance       int64  `json:"balance,omitempty" minimum:"0" doc:"Initial balance in minor units, defaults to 0"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, input *service.AccountInput) (uuid.UUID, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account for the owner named in X-User-ID.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	id, err := h.AccountService.CreateAccount(ctx, ownerID, &service.AccountInput{
		Name:          input.Body.Name,
		BankName:      input.Body.BankName,
		AccountNumber: input.Body.AccountNumber,
		Balance:       input.Body.Balance,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, request.ServiceError(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id.String()},
	}, nil
}

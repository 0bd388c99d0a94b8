package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Account UUID"`
}

// GetAccountOutput is the response for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	account, err := h.AccountService.GetAccount(ctx, ownerID, id)
	if err != nil {
		return nil, request.ServiceError(err, "failed to get account")
	}
	return &GetAccountOutput{Body: fromService(account)}, nil
}

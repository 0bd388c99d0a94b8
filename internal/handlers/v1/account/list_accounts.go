package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	UserID     string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ActiveOnly bool   `query:"activeOnly" doc:"Only return active accounts"`
}

// ListAccountsResponse is the response body for listing accounts.
type ListAccountsResponse struct {
	Accounts []Account `json:"accounts" doc:"The owner's accounts"`
}

// ListAccountsOutput is the response for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponse
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*service.Account, error)
}

// ListAccountsHandler handles GET /v1/account.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/account",
		Summary:     "List accounts",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	accounts, err := h.AccountService.ListAccounts(ctx, ownerID, input.ActiveOnly)
	if err != nil {
		return nil, request.ServiceError(err, "failed to list accounts")
	}

	converted := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		converted = append(converted, fromService(a))
	}
	return &ListAccountsOutput{Body: ListAccountsResponse{Accounts: converted}}, nil
}

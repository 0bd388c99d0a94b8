package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Account UUID"`
	Body   UpdateAccountBody
}

// UpdateAccountBody carries the updatable fields; omitted fields are left
// unchanged. The balance cannot be set here, it only moves through the
// ledger.
type UpdateAccountBody struct {
	Name          *string `json:"name,omitempty" doc:"Account name"`
	BankName      *string `json:"bankName,omitempty" doc:"Bank or institution name"`
	AccountNumber *string `json:"accountNumber,omitempty" doc:"Account number"`
	IsActive      *bool   `json:"isActive,omitempty" doc:"Whether the account is active"`
}

// UpdateAccountOutput is the response for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, patch *service.AccountPatch) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	account, err := h.AccountService.UpdateAccount(ctx, ownerID, id, &service.AccountPatch{
		Name:          input.Body.Name,
		BankName:      input.Body.BankName,
		AccountNumber: input.Body.AccountNumber,
		IsActive:      input.Body.IsActive,
	})
	if err != nil {
		return nil, request.ServiceError(err, "failed to update account")
	}
	return &UpdateAccountOutput{Body: fromService(account)}, nil
}

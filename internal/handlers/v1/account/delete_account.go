package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Account UUID"`
}

// DeleteAccountOutput is the response for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete an account",
		Description: "Deletes an account and every transaction recorded against it.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	if err := h.AccountService.DeleteAccount(ctx, ownerID, id); err != nil {
		return nil, request.ServiceError(err, "failed to delete account")
	}
	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}

package attachment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
)

// DeleteAttachmentInput is the Huma input for deleting a receipt.
type DeleteAttachmentInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// DeleteAttachmentOutput is the empty response for deleting a receipt.
type DeleteAttachmentOutput struct {
	Status int
}

// attachmentDeleter is the interface for removing stored receipts.
type attachmentDeleter interface {
	DeleteAttachment(ctx context.Context, ownerID, transactionID uuid.UUID) error
}

// DeleteAttachmentHandler handles DELETE /v1/transaction/{id}/attachment.
type DeleteAttachmentHandler struct {
	AttachmentService attachmentDeleter
}

// NewDeleteAttachmentHandler creates a new DeleteAttachmentHandler.
func NewDeleteAttachmentHandler(svc attachmentDeleter) *DeleteAttachmentHandler {
	return &DeleteAttachmentHandler{AttachmentService: svc}
}

// Register registers the delete attachment endpoint with the Huma API.
func (h *DeleteAttachmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-attachment",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}/attachment",
		Summary:     "Delete a receipt",
		Tags:        []string{"Attachments"},
	}, h.handle)
}

func (h *DeleteAttachmentHandler) handle(ctx context.Context, input *DeleteAttachmentInput) (*DeleteAttachmentOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	txID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id")
	}

	if err := h.AttachmentService.DeleteAttachment(ctx, ownerID, txID); err != nil {
		return nil, request.ServiceError(err, "failed to delete attachment")
	}
	return &DeleteAttachmentOutput{Status: http.StatusNoContent}, nil
}

package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
)

// DeleteRecurringInput is the Huma input for deleting a recurring template.
type DeleteRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Recurring template UUID"`
}

// DeleteRecurringOutput is the empty response for deleting a template.
type DeleteRecurringOutput struct {
	Status int
}

// recurringDeleter is the interface for deleting a recurring template.
type recurringDeleter interface {
	DeleteRecurring(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteRecurringHandler handles DELETE /v1/recurring/{id}.
type DeleteRecurringHandler struct {
	RecurringService recurringDeleter
}

// NewDeleteRecurringHandler creates a new DeleteRecurringHandler.
func NewDeleteRecurringHandler(svc recurringDeleter) *DeleteRecurringHandler {
	return &DeleteRecurringHandler{RecurringService: svc}
}

// Register registers the delete recurring endpoint with the Huma API.
func (h *DeleteRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-recurring",
		Method:      http.MethodDelete,
		Path:        "/v1/recurring/{id}",
		Summary:     "Delete a recurring template",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *DeleteRecurringHandler) handle(ctx context.Context, input *DeleteRecurringInput) (*DeleteRecurringOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurring template id")
	}

	if err := h.RecurringService.DeleteRecurring(ctx, ownerID, id); err != nil {
		return nil, request.ServiceError(err, "failed to delete recurring template")
	}

	return &DeleteRecurringOutput{Status: http.StatusNoContent}, nil
}

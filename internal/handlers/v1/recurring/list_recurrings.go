package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// ListRecurringsInput is the Huma input for listing recurring templates.
type ListRecurringsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
}

// ListRecurringsResponse is the response body for listing templates.
type ListRecurringsResponse struct {
	Recurrings []RecurringTransaction `json:"recurrings" doc:"The owner's recurring templates"`
}

// ListRecurringsOutput is the response for listing templates.
type ListRecurringsOutput struct {
	Body ListRecurringsResponse
}

// recurringLister is the interface for listing recurring templates.
type recurringLister interface {
	ListRecurring(ctx context.Context, ownerID uuid.UUID) ([]*storage.RecurringTransaction, error)
}

// ListRecurringsHandler handles GET /v1/recurring.
type ListRecurringsHandler struct {
	RecurringService recurringLister
}

// NewListRecurringsHandler creates a new ListRecurringsHandler.
func NewListRecurringsHandler(svc recurringLister) *ListRecurringsHandler {
	return &ListRecurringsHandler{RecurringService: svc}
}

// Register registers the list recurring endpoint with the Huma API.
func (h *ListRecurringsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurrings",
		Method:      http.MethodGet,
		Path:        "/v1/recurring",
		Summary:     "List recurring templates",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *ListRecurringsHandler) handle(ctx context.Context, input *ListRecurringsInput) (*ListRecurringsOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	rows, err := h.RecurringService.ListRecurring(ctx, ownerID)
	if err != nil {
		return nil, request.ServiceError(err, "failed to list recurring templates")
	}

	converted := make([]RecurringTransaction, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, fromStorage(row))
	}
	return &ListRecurringsOutput{Body: ListRecurringsResponse{Recurrings: converted}}, nil
}

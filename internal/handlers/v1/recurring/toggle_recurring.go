package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
)

// ToggleRecurringInput is the Huma input for toggling a recurring template.
type ToggleRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Recurring template UUID"`
}

// ToggleRecurringResponse carries the template's state after the toggle.
type ToggleRecurringResponse struct {
	IsActive bool `json:"isActive" doc:"Whether the template is active after the toggle"`
}

// ToggleRecurringOutput is the response for toggling a template.
type ToggleRecurringOutput struct {
	Body ToggleRecurringResponse
}

// recurringToggler is the interface for flipping a template's active flag.
type recurringToggler interface {
	ToggleRecurring(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// ToggleRecurringHandler handles POST /v1/recurring/{id}/toggle.
type ToggleRecurringHandler struct {
	RecurringService recurringToggler
}

// NewToggleRecurringHandler creates a new ToggleRecurringHandler.
func NewToggleRecurringHandler(svc recurringToggler) *ToggleRecurringHandler {
	return &ToggleRecurringHandler{RecurringService: svc}
}

// Register registers the toggle recurring endpoint with the Huma API.
func (h *ToggleRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-recurring",
		Method:      http.MethodPost,
		Path:        "/v1/recurring/{id}/toggle",
		Summary:     "Toggle a recurring template",
		Description: "Flips the template between active and paused without deleting it.",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *ToggleRecurringHandler) handle(ctx context.Context, input *ToggleRecurringInput) (*ToggleRecurringOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurring template id")
	}

	active, err := h.RecurringService.ToggleRecurring(ctx, ownerID, id)
	if err != nil {
		return nil, request.ServiceError(err, "failed to toggle recurring template")
	}

	return &ToggleRecurringOutput{Body: ToggleRecurringResponse{IsActive: active}}, nil
}

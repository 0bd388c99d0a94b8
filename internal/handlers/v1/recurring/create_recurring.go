package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// CreateRecurringInput is the Huma input for creating a recurring template.
type CreateRecurringInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   RecurringBody
}

// CreateRecurringOutput is the response for creating a recurring template.
type CreateRecurringOutput struct {
	Status int
	Body   RecurringTransaction
}

// recurringCreator is the interface for creating recurring templates.
type recurringCreator interface {
	CreateRecurring(ctx context.Context, ownerID uuid.UUID, input *service.RecurringInput) (*storage.RecurringTransaction, error)
}

// CreateRecurringHandler handles POST /v1/recurring.
type CreateRecurringHandler struct {
	RecurringService recurringCreator
}

// NewCreateRecurringHandler creates a new CreateRecurringHandler.
func NewCreateRecurringHandler(svc recurringCreator) *CreateRecurringHandler {
	return &CreateRecurringHandler{RecurringService: svc}
}

// Register registers the create recurring endpoint with the Huma API.
func (h *CreateRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-recurring",
		Method:      http.MethodPost,
		Path:        "/v1/recurring",
		Summary:     "Create a recurring template",
		Description: "Registers a monthly template the scheduler turns into ledger entries.",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *CreateRecurringHandler) handle(ctx context.Context, input *CreateRecurringInput) (*CreateRecurringOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}
	parsed, err := parseRecurringBody(&input.Body)
	if err != nil {
		return nil, err
	}

	row, err := h.RecurringService.CreateRecurring(ctx, ownerID, parsed)
	if err != nil {
		return nil, request.ServiceError(err, "failed to create recurring template")
	}
	return &CreateRecurringOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(row),
	}, nil
}

package recurring

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// UpdateRecurringInput is the Huma input for replacing a recurring template.
type UpdateRecurringInput struct {
	UserID string        `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string        `path:"id" doc:"Recurring template UUID"`
	Body   RecurringBody `json:"body"`
}

// UpdateRecurringOutput is the response for replacing a template.
type UpdateRecurringOutput struct {
	Body RecurringTransaction
}

// recurringUpdater is the interface for replacing a recurring template.
type recurringUpdater interface {
	UpdateRecurring(ctx context.Context, ownerID, id uuid.UUID, input *service.RecurringInput) (*storage.RecurringTransaction, error)
}

// UpdateRecurringHandler handles PUT /v1/recurring/{id}.
type UpdateRecurringHandler struct {
	RecurringService recurringUpdater
}

// NewUpdateRecurringHandler creates a new UpdateRecurringHandler.
func NewUpdateRecurringHandler(svc recurringUpdater) *UpdateRecurringHandler {
	return &UpdateRecurringHandler{RecurringService: svc}
}

// Register registers the update recurring endpoint with the Huma API.
func (h *UpdateRecurringHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-recurring",
		Method:      http.MethodPut,
		Path:        "/v1/recurring/{id}",
		Summary:     "Replace a recurring template",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *UpdateRecurringHandler) handle(ctx context.Context, input *UpdateRecurringInput) (*UpdateRecurringOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurring template id")
	}

	parsed, err := parseRecurringBody(&input.Body)
	if err != nil {
		return nil, err
	}

	row, err := h.RecurringService.UpdateRecurring(ctx, ownerID, id, parsed)
	if err != nil {
		return nil, request.ServiceError(err, "failed to update recurring template")
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("recurringID", row.ID.String())
	}

	return &UpdateRecurringOutput{Body: fromStorage(row)}, nil
}

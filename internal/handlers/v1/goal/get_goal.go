package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Goal is the API model for an owner's financial goal.
type Goal struct {
	TargetSaving         int64 `json:"targetSaving" doc:"Monthly saving target in minor units"`
	MonthlySpendingLimit int64 `json:"monthlySpendingLimit" doc:"Monthly spending ceiling in minor units, 0 for none"`
}

// GetGoalInput is the Huma input for reading the owner's goal.
type GetGoalInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
}

// GetGoalOutput is the response for reading the owner's goal.
type GetGoalOutput struct {
	Body Goal
}

// goalGetter is the interface for reading goals.
type goalGetter interface {
	GetGoal(ctx context.Context, ownerID uuid.UUID) (*storage.Goal, error)
}

// GetGoalHandler handles GET /v1/goal.
type GetGoalHandler struct {
	GoalService goalGetter
}

// NewGetGoalHandler creates a new GetGoalHandler.
func NewGetGoalHandler(svc goalGetter) *GetGoalHandler {
	return &GetGoalHandler{GoalService: svc}
}

// Register registers the get goal endpoint with the Huma API.
func (h *GetGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-goal",
		Method:      http.MethodGet,
		Path:        "/v1/goal",
		Summary:     "Get the saving goal",
		Description: "Returns zeros when no goal has been set yet.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *GetGoalHandler) handle(ctx context.Context, input *GetGoalInput) (*GetGoalOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	row, err := h.GoalService.GetGoal(ctx, ownerID)
	if err != nil {
		return nil, request.ServiceError(err, "failed to read goal")
	}

	return &GetGoalOutput{Body: Goal{
		TargetSaving:         row.TargetSaving,
		MonthlySpendingLimit: row.MonthlySpendingLimit,
	}}, nil
}

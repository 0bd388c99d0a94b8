package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// SetGoalBody is the request body for replacing the owner's goal.
type SetGoalBody struct {
	TargetSaving         int64 `json:"targetSaving" minimum:"0" doc:"Monthly saving target in minor units"`
	MonthlySpendingLimit int64 `json:"monthlySpendingLimit" minimum:"0" doc:"Monthly spending ceiling in minor units, 0 for none"`
}

// SetGoalInput is the Huma input for replacing the owner's goal.
type SetGoalInput struct {
	UserID string      `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   SetGoalBody `json:"body"`
}

// SetGoalOutput is the response for replacing the owner's goal.
type SetGoalOutput struct {
	Body Goal
}

// goalSetter is the interface for writing goals.
type goalSetter interface {
	SetGoal(ctx context.Context, ownerID uuid.UUID, targetSaving, monthlyLimit int64) (*storage.Goal, error)
}

// SetGoalHandler handles PUT /v1/goal.
type SetGoalHandler struct {
	GoalService goalSetter
}

// NewSetGoalHandler creates a new SetGoalHandler.
func NewSetGoalHandler(svc goalSetter) *SetGoalHandler {
	return &SetGoalHandler{GoalService: svc}
}

// Register registers the set goal endpoint with the Huma API.
func (h *SetGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goal",
		Summary:     "Set the saving goal",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *SetGoalHandler) handle(ctx context.Context, input *SetGoalInput) (*SetGoalOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	row, err := h.GoalService.SetGoal(ctx, ownerID, input.Body.TargetSaving, input.Body.MonthlySpendingLimit)
	if err != nil {
		return nil, request.ServiceError(err, "failed to set goal")
	}

	return &SetGoalOutput{Body: Goal{
		TargetSaving:         row.TargetSaving,
		MonthlySpendingLimit: row.MonthlySpendingLimit,
	}}, nil
}

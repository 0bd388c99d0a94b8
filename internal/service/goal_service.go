package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// GoalService manages the owner's saving target and spending limit. Each
// owner has at most one goal row; reading before one exists returns zeros.
type GoalService struct {
	storage *storage.Storage
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store}
}

// GetGoal returns the owner's goal, or a zero goal if none has been set.
func (s *GoalService) GetGoal(ctx context.Context, ownerID uuid.UUID) (*storage.Goal, error) {
	row, err := s.storage.Goals.FindByOwner(ctx, ownerID)
	if err == storage.ErrNotFound {
		return &storage.Goal{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// SetGoal creates or replaces the owner's goal.
func (s *GoalService) SetGoal(ctx context.Context, ownerID uuid.UUID, targetSaving, monthlyLimit int64) (*storage.Goal, error) {
	if targetSaving < 0 {
		return nil, &ValidationError{Field: "target_saving", Message: "must not be negative"}
	}
	if monthlyLimit < 0 {
		return nil, &ValidationError{Field: "monthly_spending_limit", Message: "must not be negative"}
	}

	if err := s.storage.Goals.Upsert(ctx, &storage.GoalUpsert{
		OwnerID:              ownerID,
		TargetSaving:         targetSaving,
		MonthlySpendingLimit: monthlyLimit,
	}); err != nil {
		return nil, err
	}
	return s.storage.Goals.FindByOwner(ctx, ownerID)
}

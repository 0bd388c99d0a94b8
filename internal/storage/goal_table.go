package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

// Goal holds an owner's savings target and monthly spending limit (1:1).
type Goal struct {
	OwnerID              uuid.UUID `db:"user_id"`
	TargetSaving         int64     `db:"target_saving"`
	MonthlySpendingLimit int64     `db:"monthly_spending_limit"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// GoalUpsert is the input for creating or replacing an owner's goal.
type GoalUpsert struct {
	OwnerID              uuid.UUID
	TargetSaving         int64
	MonthlySpendingLimit int64
}

// IGoalTable defines the interface for goal storage operations.
type IGoalTable interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Goal, error)
	Upsert(ctx context.Context, upsert *GoalUpsert) error
}

// GoalsTable provides access to the goals table.
type GoalsTable struct {
	exec bob.Executor
}

var _ IGoalTable = (*GoalsTable)(nil)

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

func (t *GoalsTable) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Goal, error) {
	query := psql.RawQuery(
		"SELECT user_id, target_saving, monthly_spending_limit, created_at, updated_at FROM goals WHERE user_id = ?",
		ownerID,
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Goal]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (t *GoalsTable) Upsert(ctx context.Context, upsert *GoalUpsert) error {
	query := psql.RawQuery(
		`INSERT INTO goals (user_id, target_saving, monthly_spending_limit)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE
		 SET target_saving = EXCLUDED.target_saving,
		     monthly_spending_limit = EXCLUDED.monthly_spending_limit,
		     updated_at = now()`,
		upsert.OwnerID, upsert.TargetSaving, upsert.MonthlySpendingLimit,
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

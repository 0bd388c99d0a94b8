package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// RecurringsTable provides access to the recurring_transactions table.
type RecurringsTable struct {
	exec bob.Executor
}

var _ IRecurringTable = (*RecurringsTable)(nil)

// NewRecurringsTable creates a RecurringsTable running on the given executor.
func NewRecurringsTable(exec bob.Executor) *RecurringsTable {
	return &RecurringsTable{exec: exec}
}

const recurringColumns = "id, user_id, account_id, category_id, tx_type, amount, recurring_day, merchant, memo, start_date, end_date, is_active, last_executed, created_at"

// FindByID retrieves a recurring template by primary key, scoped to its owner.
func (t *RecurringsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*RecurringTransaction, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(recurringColumns)),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new recurring template and returns its generated ID.
func (t *RecurringsTable) Insert(ctx context.Context, create *RecurringCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("recurring_transactions",
			"user_id", "account_id", "category_id", "tx_type", "amount",
			"recurring_day", "merchant", "memo", "start_date", "end_date", "is_active"),
		im.Values(psql.Arg(
			create.OwnerID, create.AccountID, create.CategoryID, create.TxType, create.Amount,
			create.RecurringDay, create.Merchant, create.Memo, create.StartDate, create.EndDate, create.IsActive)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update rewrites the editable fields of the owner's template.
func (t *RecurringsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *RecurringUpdate) error {
	query := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("account_id").To(psql.Arg(update.AccountID)),
		um.SetCol("category_id").To(psql.Arg(update.CategoryID)),
		um.SetCol("tx_type").To(psql.Arg(update.TxType)),
		um.SetCol("amount").To(psql.Arg(update.Amount)),
		um.SetCol("recurring_day").To(psql.Arg(update.RecurringDay)),
		um.SetCol("merchant").To(psql.Arg(update.Merchant)),
		um.SetCol("memo").To(psql.Arg(update.Memo)),
		um.SetCol("start_date").To(psql.Arg(update.StartDate)),
		um.SetCol("end_date").To(psql.Arg(update.EndDate)),
		um.SetCol("is_active").To(psql.Arg(update.IsActive)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// Delete removes the owner's template.
func (t *RecurringsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("recurring_transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// List returns the owner's templates ordered by execution day.
func (t *RecurringsTable) List(ctx context.Context, ownerID uuid.UUID) ([]*RecurringTransaction, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(recurringColumns)),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("recurring_day").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*RecurringTransaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SetActive flips the owner's template active flag. Reactivation is not
// gated by end_date; the scheduler re-checks it on the next run.
func (t *RecurringsTable) SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) error {
	query := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("is_active").To(psql.Arg(active)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// ListDue returns active templates due on or before asOf, across all users.
func (t *RecurringsTable) ListDue(ctx context.Context, asOf time.Time) ([]*RecurringTransaction, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(recurringColumns)),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("recurring_day").LTE(psql.Arg(asOf.Day()))),
		sm.Where(psql.Quote("start_date").LTE(psql.Arg(asOf))),
		sm.OrderBy("recurring_day").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[RecurringTransaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*RecurringTransaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// MarkExecuted stamps last_executed. Scoped by id only: the scheduler acts
// on templates it already loaded with their owners.
func (t *RecurringsTable) MarkExecuted(ctx context.Context, id uuid.UUID, executedOn time.Time) error {
	query := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("last_executed").To(psql.Arg(executedOn)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

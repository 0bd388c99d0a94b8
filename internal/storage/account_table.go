package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable running on the given executor.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

const accountColumns = "id, user_id, name, bank_name, account_number, balance, is_active, created_at, updated_at"

// FindByID retrieves an account by primary key, scoped to its owner.
func (t *AccountsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(accountColumns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("accounts", "user_id", "name", "bank_name", "account_number", "balance", "is_active"),
		im.Values(psql.Arg(create.OwnerID, create.Name, create.BankName, create.AccountNumber, create.Balance, create.IsActive)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns the owner's accounts, newest first. Nil filter returns all.
func (t *AccountsTable) List(ctx context.Context, ownerID uuid.UUID, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(accountColumns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("created_at").Desc(),
	}
	if filter != nil && filter.ActiveOnly {
		queryMods = append(queryMods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of update to the owner's account.
func (t *AccountsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *AccountUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("accounts"),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").To(psql.Arg(v)))
	}
	if v, ok := update.BankName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("bank_name").To(psql.Arg(v)))
	}
	if v, ok := update.AccountNumber.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_number").To(psql.Arg(v)))
	}
	if v, ok := update.IsActive.Get(); ok {
		queryMods = append(queryMods, um.SetCol("is_active").To(psql.Arg(v)))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// Delete removes the owner's account. Transactions, recurring templates and
// attachments cascade at the database level.
func (t *AccountsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// AdjustBalance adds delta to the stored balance. The increment is evaluated
// server-side so concurrent adjusters on the same row cannot lose updates.
func (t *AccountsTable) AdjustBalance(ctx context.Context, ownerID, id uuid.UUID, delta int64) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

func errIfNoRows(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

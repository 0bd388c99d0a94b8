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

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// NewTransactionsTable creates a TransactionsTable running on the given executor.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

const transactionColumns = "id, user_id, account_id, category_id, tx_type, amount, balance_after, occurred_at, merchant, memo, created_at, updated_at"

// FindByID retrieves a transaction by primary key, scoped to its owner.
func (t *TransactionsTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(transactionColumns)),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions",
			"user_id", "account_id", "category_id", "tx_type", "amount",
			"balance_after", "occurred_at", "merchant", "memo"),
		im.Values(psql.Arg(
			create.OwnerID, create.AccountID, create.CategoryID, create.TxType, create.Amount,
			create.BalanceAfter, create.OccurredAt, create.Merchant, create.Memo)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update rewrites the mutable fields of the owner's transaction.
func (t *TransactionsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) error {
	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("account_id").To(psql.Arg(update.AccountID)),
		um.SetCol("category_id").To(psql.Arg(update.CategoryID)),
		um.SetCol("tx_type").To(psql.Arg(update.TxType)),
		um.SetCol("amount").To(psql.Arg(update.Amount)),
		um.SetCol("balance_after").To(psql.Arg(update.BalanceAfter)),
		um.SetCol("occurred_at").To(psql.Arg(update.OccurredAt)),
		um.SetCol("merchant").To(psql.Arg(update.Merchant)),
		um.SetCol("memo").To(psql.Arg(update.Memo)),
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

// Delete removes the owner's transaction.
func (t *TransactionsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return errIfNoRows(result)
}

// List returns the owner's transactions matching the filter, ordered by
// occurrence date descending then creation order descending.
func (t *TransactionsTable) List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(transactionColumns)),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("occurred_at").Desc(),
		sm.OrderBy("created_at").Desc(),
	}

	if filter != nil {
		if filter.AccountID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.TxType != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("tx_type").EQ(psql.Arg(*filter.TxType))))
		}
		if filter.DateFrom != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").GTE(psql.Arg(*filter.DateFrom))))
		}
		if filter.DateTo != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").LTE(psql.Arg(*filter.DateTo))))
		}
		if filter.Keyword != "" {
			pattern := "%" + filter.Keyword + "%"
			queryMods = append(queryMods, sm.Where(psql.Raw("(memo ILIKE ? OR merchant ILIKE ?)", pattern, pattern)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

// LedgerTotals are the all-time signed sums for one owner.
type LedgerTotals struct {
	Income  int64 `db:"income"`
	Expense int64 `db:"expense"`
}

// MonthlyTotal is one calendar month's income/expense aggregate.
type MonthlyTotal struct {
	Year    int   `db:"year"`
	Month   int   `db:"month"`
	Income  int64 `db:"income"`
	Expense int64 `db:"expense"`
}

// CategoryTotal is one category's total expense.
type CategoryTotal struct {
	Name  string `db:"name"`
	Total int64  `db:"total"`
}

// ExpenseCounts counts expense rows overall and those with neither memo
// nor merchant (the impulse-spending proxy).
type ExpenseCounts struct {
	Total int64 `db:"total"`
	Blank int64 `db:"blank"`
}

// HalfMonthSplit sums expenses occurring in the first half of a month
// (day <= 15) versus the rest.
type HalfMonthSplit struct {
	Early int64 `db:"early"`
	Late  int64 `db:"late"`
}

// RecurringSums are the monthly totals of active recurring templates.
type RecurringSums struct {
	Income  int64 `db:"income"`
	Expense int64 `db:"expense"`
}

// RecurringLine is one active template as the report renders it.
type RecurringLine struct {
	Merchant     string `db:"merchant"`
	Memo         string `db:"memo"`
	Amount       int64  `db:"amount"`
	RecurringDay int    `db:"recurring_day"`
	CategoryName string `db:"category_name"`
}

// IReportTable is the read-only aggregation surface behind the analytics
// and narrative-report features. It never mutates state.
type IReportTable interface {
	LedgerTotals(ctx context.Context, ownerID uuid.UUID) (*LedgerTotals, error)
	MonthlyTotals(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]*MonthlyTotal, error)
	CategoryTotals(ctx context.Context, ownerID uuid.UUID, limit int) ([]*CategoryTotal, error)
	SatisfactionExpense(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ExpenseCounts(ctx context.Context, ownerID uuid.UUID) (*ExpenseCounts, error)
	HalfMonthSplit(ctx context.Context, ownerID uuid.UUID) (*HalfMonthSplit, error)
	SumActiveBalances(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountNonPositiveBalances(ctx context.Context, ownerID uuid.UUID) (int64, error)
	RecurringSums(ctx context.Context, ownerID uuid.UUID) (*RecurringSums, error)
	ListActiveRecurring(ctx context.Context, ownerID uuid.UUID, txType TxType) ([]*RecurringLine, error)
	MonthExpense(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) (int64, error)
}

// ReportsTable implements IReportTable with raw aggregate queries; the
// grouping expressions don't fit the builder comfortably.
type ReportsTable struct {
	exec bob.Executor
}

var _ IReportTable = (*ReportsTable)(nil)

func NewReportsTable(exec bob.Executor) *ReportsTable {
	return &ReportsTable{exec: exec}
}

func (t *ReportsTable) LedgerTotals(ctx context.Context, ownerID uuid.UUID) (*LedgerTotals, error) {
	query := psql.RawQuery(
		`SELECT
		   COALESCE(SUM(CASE WHEN tx_type = 'IN' THEN amount ELSE 0 END), 0) AS income,
		   COALESCE(SUM(CASE WHEN tx_type = 'OUT' THEN amount ELSE 0 END), 0) AS expense
		 FROM transactions WHERE user_id = ?`,
		ownerID,
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[LedgerTotals]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *ReportsTable) MonthlyTotals(ctx context.Context, ownerID uuid.UUID, from time.Time) ([]*MonthlyTotal, error) {
	query := psql.RawQuery(
		`SELECT
		   EXTRACT(YEAR FROM occurred_at)::int AS year,
		   EXTRACT(MONTH FROM occurred_at)::int AS month,
		   COALESCE(SUM(CASE WHEN tx_type = 'IN' THEN amount ELSE 0 END), 0) AS income,
		   COALESCE(SUM(CASE WHEN tx_type = 'OUT' THEN amount ELSE 0 END), 0) AS expense
		 FROM transactions
		 WHERE user_id = ? AND occurred_at >= ?
		 GROUP BY 1, 2
		 ORDER BY 1, 2`,
		ownerID, from,
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[MonthlyTotal]())
	if err != nil {
		return nil, err
	}

	result := make([]*MonthlyTotal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *ReportsTable) CategoryTotals(ctx context.Context, ownerID uuid.UUID, limit int) ([]*CategoryTotal, error) {
	query := psql.RawQuery(
		`SELECT c.name AS name, COALESCE(SUM(t.amount), 0) AS total
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.user_id = ? AND t.tx_type = 'OUT'
		 GROUP BY c.name
		 ORDER BY total DESC
		 LIMIT ?`,
		ownerID, limit,
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[CategoryTotal]())
	if err != nil {
		return nil, err
	}

	result := make([]*CategoryTotal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *ReportsTable) SatisfactionExpense(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := psql.RawQuery(
		`SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.user_id = ? AND t.tx_type = 'OUT' AND c.is_satisfaction`,
		ownerID,
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

func (t *ReportsTable) ExpenseCounts(ctx context.Context, ownerID uuid.UUID) (*ExpenseCounts, error) {
	query := psql.RawQuery(
		`SELECT
		   COUNT(*) AS total,
		   COUNT(*) FILTER (WHERE memo = '' AND merchant = '') AS blank
		 FROM transactions
		 WHERE user_id = ? AND tx_type = 'OUT'`,
		ownerID,
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[ExpenseCounts]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *ReportsTable) HalfMonthSplit(ctx context.Context, ownerID uuid.UUID) (*HalfMonthSplit, error) {
	query := psql.RawQuery(
		`SELECT
		   COALESCE(SUM(CASE WHEN EXTRACT(DAY FROM occurred_at) <= 15 THEN amount ELSE 0 END), 0) AS early,
		   COALESCE(SUM(CASE WHEN EXTRACT(DAY FROM occurred_at) > 15 THEN amount ELSE 0 END), 0) AS late
		 FROM transactions
		 WHERE user_id = ? AND tx_type = 'OUT'`,
		ownerID,
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[HalfMonthSplit]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *ReportsTable) SumActiveBalances(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := psql.RawQuery(
		`SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = ? AND is_active`,
		ownerID,
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

func (t *ReportsTable) CountNonPositiveBalances(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := psql.RawQuery(
		`SELECT COUNT(*) FROM accounts WHERE user_id = ? AND balance <= 0`,
		ownerID,
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

func (t *ReportsTable) RecurringSums(ctx context.Context, ownerID uuid.UUID) (*RecurringSums, error) {
	query := psql.RawQuery(
		`SELECT
		   COALESCE(SUM(CASE WHEN tx_type = 'IN' THEN amount ELSE 0 END), 0) AS income,
		   COALESCE(SUM(CASE WHEN tx_type = 'OUT' THEN amount ELSE 0 END), 0) AS expense
		 FROM recurring_transactions
		 WHERE user_id = ? AND is_active`,
		ownerID,
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[RecurringSums]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *ReportsTable) ListActiveRecurring(ctx context.Context, ownerID uuid.UUID, txType TxType) ([]*RecurringLine, error) {
	query := psql.RawQuery(
		`SELECT r.merchant AS merchant, r.memo AS memo, r.amount AS amount,
		        r.recurring_day AS recurring_day, COALESCE(c.name, '') AS category_name
		 FROM recurring_transactions r
		 LEFT JOIN categories c ON c.id = r.category_id
		 WHERE r.user_id = ? AND r.is_active AND r.tx_type = ?
		 ORDER BY r.recurring_day ASC`,
		ownerID, txType,
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[RecurringLine]())
	if err != nil {
		return nil, err
	}

	result := make([]*RecurringLine, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *ReportsTable) MonthExpense(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) (int64, error) {
	query := psql.RawQuery(
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = ? AND tx_type = 'OUT'
		   AND EXTRACT(YEAR FROM occurred_at) = ? AND EXTRACT(MONTH FROM occurred_at) = ?`,
		ownerID, year, int(month),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
}

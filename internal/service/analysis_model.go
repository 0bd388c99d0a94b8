package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummary is the full analytical picture of one owner's ledger.
// Every figure the narrative report may cite lives here; nothing is
// computed downstream of this struct.
type FinancialSummary struct {
	GeneratedAt time.Time

	// Lifetime totals.
	TotalBalance int64
	TotalIncome  int64
	TotalExpense int64
	NetFlow      int64

	// SavingRate is (income - expense) / income as a percentage.
	// SpendingRate is expense / income, and BalanceIndex is their gap
	// (SavingRate - SpendingRate); all three are zero with no income.
	SavingRate   decimal.Decimal
	SpendingRate decimal.Decimal
	BalanceIndex decimal.Decimal

	// Sample standard deviations over the monthly net and expense series,
	// in currency units. Zero with fewer than two months of data.
	SavingVolatility  decimal.Decimal
	ExpenseVolatility decimal.Decimal

	// AvgMonthlyExpense averages over the trailing months that had any
	// activity. CashEnduranceMonths is how long the current balances would
	// last at that burn rate.
	AvgMonthlyExpense   int64
	CashEnduranceMonths decimal.Decimal

	Monthly []MonthlyFlow

	// TopCategories hold expense totals with their share of all expenses.
	// ConcentrationIndex is a Herfindahl-Hirschman index over those shares
	// (0..10000); higher means spending concentrates in fewer categories.
	TopCategories      []CategoryShare
	ConcentrationIndex decimal.Decimal

	// SatisfactionExpense sums spending in categories the owner marked as
	// worth it. ImpulseShare is the percentage of expense entries carrying
	// neither a memo nor a merchant, a proxy for unplanned spending.
	SatisfactionExpense int64
	ImpulseShare        decimal.Decimal

	// Spending split between days 1-15 and 16-end of month.
	EarlyMonthExpense int64
	LateMonthExpense  int64

	// Fixed commitments from active recurring templates. FixedExpenseRatio
	// is FixedExpense as a percentage of AvgMonthlyExpense.
	FixedIncome       int64
	FixedExpense      int64
	FixedExpenseRatio decimal.Decimal
	Commitments       []RecurringCommitment

	Goal GoalProgress

	NonPositiveAccounts int64

	// HealthScore is 0..100. Warnings list concrete conditions that pulled
	// it down.
	HealthScore int
	Warnings    []string
}

// MonthlyFlow is one month of ledger activity.
type MonthlyFlow struct {
	Year    int
	Month   time.Month
	Income  int64
	Expense int64
	Net     int64
}

// CategoryShare is an expense category's total and share of all expenses,
// as a percentage.
type CategoryShare struct {
	Name  string
	Total int64
	Share decimal.Decimal
}

// RecurringCommitment is one active recurring expense line.
type RecurringCommitment struct {
	Merchant   string
	Memo       string
	Amount     int64
	DayOfMonth int
	Category   string
}

// GoalProgress relates the owner's goal to the current month.
type GoalProgress struct {
	TargetSaving         int64
	MonthlySpendingLimit int64
	CurrentMonthExpense  int64

	// LimitUsed is CurrentMonthExpense as a percentage of the limit; zero
	// when no limit is set.
	LimitUsed decimal.Decimal

	// SavingAchieved is lifetime net flow as a percentage of TargetSaving,
	// capped at 100. Zero without a target or with non-positive net flow.
	SavingAchieved decimal.Decimal
}

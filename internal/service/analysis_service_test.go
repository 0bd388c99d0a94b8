package service

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

func healthyInputs() *analysisInputs {
	return &analysisInputs{
		asOf:   time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		totals: &storage.LedgerTotals{Income: 10_000_000, Expense: 7_000_000},
		monthly: []*storage.MonthlyTotal{
			{Year: 2026, Month: 1, Income: 3_000_000, Expense: 2_000_000},
			{Year: 2026, Month: 2, Income: 3_000_000, Expense: 2_500_000},
			{Year: 2026, Month: 3, Income: 4_000_000, Expense: 2_500_000},
		},
		categories: []*storage.CategoryTotal{
			{Name: "Rent", Total: 3_500_000},
			{Name: "Food", Total: 2_100_000},
			{Name: "Transport", Total: 1_400_000},
		},
		satisfaction:  1_000_000,
		expenseCounts: &storage.ExpenseCounts{Total: 40, Blank: 4},
		halfMonth:     &storage.HalfMonthSplit{Early: 4_000_000, Late: 3_000_000},
		totalBalance:  20_000_000,
		recurringSums: &storage.RecurringSums{Income: 3_000_000, Expense: 650_000},
		commitments: []*storage.RecurringLine{
			{Merchant: "Landlord", Amount: 650_000, RecurringDay: 25, CategoryName: "Rent"},
		},
		goal:         &storage.Goal{TargetSaving: 10_000_000, MonthlySpendingLimit: 3_000_000},
		monthExpense: 2_500_000,
	}
}

func TestSummarize_HealthyLedger(t *testing.T) {
	s := summarize(healthyInputs())

	assert.Equal(t, int64(3_000_000), s.NetFlow)
	assert.Equal(t, "30", s.SavingRate.String())
	assert.Equal(t, "70", s.SpendingRate.String())
	assert.Equal(t, "-40", s.BalanceIndex.String())
	// Nets 1,000,000 / 500,000 / 1,500,000: sample stdev 500,000.
	assert.Equal(t, "500000", s.SavingVolatility.String())
	// Expenses 2,000,000 / 2,500,000 / 2,500,000: sample stdev ≈ 288,675.
	assert.Equal(t, "288675", s.ExpenseVolatility.String())
	assert.Equal(t, int64(2_333_333), s.AvgMonthlyExpense)
	// 20,000,000 / 2,333,333 ≈ 8.6 months of runway.
	assert.Equal(t, "8.6", s.CashEnduranceMonths.String())
	assert.Empty(t, s.Warnings, spew.Sdump(s))
	// Base 50 + saving 15 + endurance 15 + fixed ratio 10 + no warnings 10.
	assert.Equal(t, 100, s.HealthScore)
}

func TestSummarize_CategoryShares(t *testing.T) {
	s := summarize(healthyInputs())

	assert.Len(t, s.TopCategories, 3)
	assert.Equal(t, "Rent", s.TopCategories[0].Name)
	assert.Equal(t, "50", s.TopCategories[0].Share.String())
	assert.Equal(t, "30", s.TopCategories[1].Share.String())
	assert.Equal(t, "20", s.TopCategories[2].Share.String())
	// 50^2 + 30^2 + 20^2 = 3800.
	assert.Equal(t, "3800", s.ConcentrationIndex.String())
	assert.Equal(t, "10", s.ImpulseShare.String())
}

func TestSummarize_GoalAchievement(t *testing.T) {
	s := summarize(healthyInputs())

	// Net 3,000,000 against a 10,000,000 target.
	assert.Equal(t, "30", s.Goal.SavingAchieved.String())
}

func TestSummarize_GoalAchievementCapsAtFull(t *testing.T) {
	in := healthyInputs()
	in.goal = &storage.Goal{TargetSaving: 1_000_000}

	s := summarize(in)

	assert.Equal(t, "100", s.Goal.SavingAchieved.String())
}

func TestSummarize_GoalAchievementZeroOnDeficit(t *testing.T) {
	in := healthyInputs()
	in.totals = &storage.LedgerTotals{Income: 5_000_000, Expense: 7_000_000}

	s := summarize(in)

	assert.True(t, s.Goal.SavingAchieved.IsZero())
}

func TestSummarize_WarnsOnDrainedAccounts(t *testing.T) {
	in := healthyInputs()
	in.nonPositive = 2

	s := summarize(in)

	assert.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "2 account(s)")
	// One warning halves the stability bonus: 50+15+15+10+5.
	assert.Equal(t, 95, s.HealthScore)
}

func TestSummarize_WarnsOnConsecutiveDeficits(t *testing.T) {
	in := healthyInputs()
	in.monthly = []*storage.MonthlyTotal{
		{Year: 2026, Month: 1, Income: 1_000_000, Expense: 2_000_000},
		{Year: 2026, Month: 2, Income: 1_000_000, Expense: 2_500_000},
		{Year: 2026, Month: 3, Income: 3_000_000, Expense: 1_000_000},
	}

	s := summarize(in)

	assert.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "2 consecutive months")
}

func TestSummarize_SingleDeficitMonthIsFine(t *testing.T) {
	in := healthyInputs()
	in.monthly = []*storage.MonthlyTotal{
		{Year: 2026, Month: 1, Income: 1_000_000, Expense: 2_000_000},
		{Year: 2026, Month: 2, Income: 3_000_000, Expense: 1_000_000},
		{Year: 2026, Month: 3, Income: 1_000_000, Expense: 2_000_000},
	}

	s := summarize(in)

	for _, w := range s.Warnings {
		assert.NotContains(t, w, "consecutive")
	}
}

func TestSummarize_WarnsOnHeavyFixedCosts(t *testing.T) {
	in := healthyInputs()
	in.recurringSums = &storage.RecurringSums{Expense: 2_000_000}

	s := summarize(in)

	assert.NotEmpty(t, s.Warnings)
	assert.Contains(t, s.Warnings[0], "fixed commitments")
}

func TestSummarize_WarnsOnBlownSpendingLimit(t *testing.T) {
	in := healthyInputs()
	in.monthExpense = 3_500_000

	s := summarize(in)

	assert.Contains(t, s.Warnings, "monthly spending limit already exceeded")
	assert.True(t, s.Goal.LimitUsed.GreaterThan(decimal.NewFromInt(100)))
}

func TestSummarize_EmptyLedger(t *testing.T) {
	s := summarize(&analysisInputs{
		asOf:          time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		totals:        &storage.LedgerTotals{},
		expenseCounts: &storage.ExpenseCounts{},
		halfMonth:     &storage.HalfMonthSplit{},
		recurringSums: &storage.RecurringSums{},
		goal:          &storage.Goal{},
	})

	assert.True(t, s.SavingRate.IsZero())
	assert.True(t, s.SpendingRate.IsZero())
	assert.True(t, s.BalanceIndex.IsZero())
	assert.True(t, s.SavingVolatility.IsZero())
	assert.True(t, s.ExpenseVolatility.IsZero())
	assert.True(t, s.CashEnduranceMonths.IsZero())
	assert.Zero(t, s.AvgMonthlyExpense)
	// Base 50 + fixed ratio 10 + no warnings 10; no endurance or saving bonus.
	assert.Equal(t, 70, s.HealthScore)
}

func TestSummarize_BalanceWithNoSpendHistory(t *testing.T) {
	s := summarize(&analysisInputs{
		asOf:          time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		totals:        &storage.LedgerTotals{Income: 500_000},
		totalBalance:  500_000,
		expenseCounts: &storage.ExpenseCounts{},
		halfMonth:     &storage.HalfMonthSplit{},
		recurringSums: &storage.RecurringSums{},
		goal:          &storage.Goal{},
	})

	assert.Equal(t, "12", s.CashEnduranceMonths.String())
	assert.Equal(t, "100", s.SavingRate.String())
}

func TestSampleStdev(t *testing.T) {
	assert.True(t, sampleStdev(nil).IsZero())
	assert.True(t, sampleStdev([]int64{5}).IsZero())
	assert.Equal(t, "500000", sampleStdev([]int64{1_000_000, 500_000, 1_500_000}).String())
	// 2, 4, 4, 4, 5, 5, 7, 9 has variance 32/7 around mean 5.
	assert.Equal(t, "2", sampleStdev([]int64{2, 4, 4, 4, 5, 5, 7, 9}).String())
	assert.True(t, sampleStdev([]int64{3, 3, 3}).IsZero())
}

func TestLongestDeficitRun(t *testing.T) {
	monthly := []MonthlyFlow{
		{Net: -1}, {Net: -1}, {Net: 1}, {Net: -1}, {Net: -1}, {Net: -1},
	}
	assert.Equal(t, 3, longestDeficitRun(monthly))
	assert.Equal(t, 0, longestDeficitRun(nil))
}

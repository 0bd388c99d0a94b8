package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

const (
	trendMonths      = 12
	topCategoryLimit = 10
)

var oneHundred = decimal.NewFromInt(100)

// AnalysisService assembles a FinancialSummary from ledger aggregates. The
// aggregation happens in SQL; this layer derives ratios, the health score,
// and warnings.
type AnalysisService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(store *storage.Storage, now func() time.Time) *AnalysisService {
	return &AnalysisService{storage: store, now: now}
}

// analysisInputs carries the raw aggregates so summarize stays a pure
// function over them.
type analysisInputs struct {
	asOf          time.Time
	totals        *storage.LedgerTotals
	monthly       []*storage.MonthlyTotal
	categories    []*storage.CategoryTotal
	satisfaction  int64
	expenseCounts *storage.ExpenseCounts
	halfMonth     *storage.HalfMonthSplit
	totalBalance  int64
	nonPositive   int64
	recurringSums *storage.RecurringSums
	commitments   []*storage.RecurringLine
	goal          *storage.Goal
	monthExpense  int64
}

// BuildSummary computes the owner's full financial picture as of now.
func (s *AnalysisService) BuildSummary(ctx context.Context, ownerID uuid.UUID) (*FinancialSummary, error) {
	asOf := s.now()
	in := &analysisInputs{asOf: asOf}

	var err error
	if in.totals, err = s.storage.Reports.LedgerTotals(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading ledger totals: %w", err)
	}

	from := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	if in.monthly, err = s.storage.Reports.MonthlyTotals(ctx, ownerID, from); err != nil {
		return nil, fmt.Errorf("loading monthly totals: %w", err)
	}
	if in.categories, err = s.storage.Reports.CategoryTotals(ctx, ownerID, topCategoryLimit); err != nil {
		return nil, fmt.Errorf("loading category totals: %w", err)
	}
	if in.satisfaction, err = s.storage.Reports.SatisfactionExpense(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading satisfaction expense: %w", err)
	}
	if in.expenseCounts, err = s.storage.Reports.ExpenseCounts(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading expense counts: %w", err)
	}
	if in.halfMonth, err = s.storage.Reports.HalfMonthSplit(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading half-month split: %w", err)
	}
	if in.totalBalance, err = s.storage.Reports.SumActiveBalances(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading balance sum: %w", err)
	}
	if in.nonPositive, err = s.storage.Reports.CountNonPositiveBalances(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("counting drained accounts: %w", err)
	}
	if in.recurringSums, err = s.storage.Reports.RecurringSums(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("loading recurring sums: %w", err)
	}
	if in.commitments, err = s.storage.Reports.ListActiveRecurring(ctx, ownerID, storage.TxTypeOut); err != nil {
		return nil, fmt.Errorf("loading commitments: %w", err)
	}
	if in.monthExpense, err = s.storage.Reports.MonthExpense(ctx, ownerID, asOf.Year(), asOf.Month()); err != nil {
		return nil, fmt.Errorf("loading current month expense: %w", err)
	}

	in.goal, err = s.storage.Goals.FindByOwner(ctx, ownerID)
	if err == storage.ErrNotFound {
		in.goal = &storage.Goal{OwnerID: ownerID}
	} else if err != nil {
		return nil, fmt.Errorf("loading goal: %w", err)
	}

	return summarize(in), nil
}

// summarize derives every ratio, the score, and the warnings from raw
// aggregates. It touches no storage.
func summarize(in *analysisInputs) *FinancialSummary {
	summary := &FinancialSummary{
		GeneratedAt:         in.asOf,
		TotalBalance:        in.totalBalance,
		TotalIncome:         in.totals.Income,
		TotalExpense:        in.totals.Expense,
		NetFlow:             in.totals.Income - in.totals.Expense,
		SatisfactionExpense: in.satisfaction,
		EarlyMonthExpense:   in.halfMonth.Early,
		LateMonthExpense:    in.halfMonth.Late,
		FixedIncome:         in.recurringSums.Income,
		FixedExpense:        in.recurringSums.Expense,
		NonPositiveAccounts: in.nonPositive,
	}

	if in.totals.Income > 0 {
		summary.SavingRate = percentOf(summary.NetFlow, in.totals.Income)
		summary.SpendingRate = percentOf(in.totals.Expense, in.totals.Income)
		summary.BalanceIndex = summary.SavingRate.Sub(summary.SpendingRate)
	}

	summary.Monthly = make([]MonthlyFlow, 0, len(in.monthly))
	nets := make([]int64, 0, len(in.monthly))
	expenses := make([]int64, 0, len(in.monthly))
	var trailingExpense int64
	for _, m := range in.monthly {
		summary.Monthly = append(summary.Monthly, MonthlyFlow{
			Year:    m.Year,
			Month:   time.Month(m.Month),
			Income:  m.Income,
			Expense: m.Expense,
			Net:     m.Income - m.Expense,
		})
		nets = append(nets, m.Income-m.Expense)
		expenses = append(expenses, m.Expense)
		trailingExpense += m.Expense
	}
	if len(in.monthly) > 0 {
		summary.AvgMonthlyExpense = trailingExpense / int64(len(in.monthly))
	}
	summary.SavingVolatility = sampleStdev(nets)
	summary.ExpenseVolatility = sampleStdev(expenses)

	switch {
	case summary.AvgMonthlyExpense > 0:
		summary.CashEnduranceMonths = decimal.NewFromInt(in.totalBalance).
			Div(decimal.NewFromInt(summary.AvgMonthlyExpense)).Round(1)
	case in.totalBalance > 0:
		// No recorded spend to burn through the balance.
		summary.CashEnduranceMonths = decimal.NewFromInt(trendMonths)
	}

	summary.TopCategories = make([]CategoryShare, 0, len(in.categories))
	for _, c := range in.categories {
		share := decimal.Zero
		if in.totals.Expense > 0 {
			share = percentOf(c.Total, in.totals.Expense)
		}
		summary.TopCategories = append(summary.TopCategories, CategoryShare{
			Name:  c.Name,
			Total: c.Total,
			Share: share,
		})
		summary.ConcentrationIndex = summary.ConcentrationIndex.Add(share.Mul(share))
	}
	summary.ConcentrationIndex = summary.ConcentrationIndex.Round(0)

	if in.expenseCounts.Total > 0 {
		summary.ImpulseShare = percentOf(in.expenseCounts.Blank, in.expenseCounts.Total)
	}
	if summary.AvgMonthlyExpense > 0 {
		summary.FixedExpenseRatio = percentOf(in.recurringSums.Expense, summary.AvgMonthlyExpense)
	}

	summary.Commitments = make([]RecurringCommitment, 0, len(in.commitments))
	for _, line := range in.commitments {
		summary.Commitments = append(summary.Commitments, RecurringCommitment{
			Merchant:   line.Merchant,
			Memo:       line.Memo,
			Amount:     line.Amount,
			DayOfMonth: line.RecurringDay,
			Category:   line.CategoryName,
		})
	}

	summary.Goal = GoalProgress{
		TargetSaving:         in.goal.TargetSaving,
		MonthlySpendingLimit: in.goal.MonthlySpendingLimit,
		CurrentMonthExpense:  in.monthExpense,
	}
	if in.goal.MonthlySpendingLimit > 0 {
		summary.Goal.LimitUsed = percentOf(in.monthExpense, in.goal.MonthlySpendingLimit)
	}
	if in.goal.TargetSaving > 0 && summary.NetFlow > 0 {
		achieved := percentOf(summary.NetFlow, in.goal.TargetSaving)
		if achieved.GreaterThan(oneHundred) {
			achieved = oneHundred
		}
		summary.Goal.SavingAchieved = achieved
	}

	summary.Warnings = buildWarnings(summary)
	summary.HealthScore = healthScore(summary)
	return summary
}

func percentOf(part, whole int64) decimal.Decimal {
	return decimal.NewFromInt(part).Mul(oneHundred).
		Div(decimal.NewFromInt(whole)).Round(1)
}

// sampleStdev is the sample standard deviation (n-1 denominator) of the
// values, rounded to whole currency units. Zero for fewer than two values.
func sampleStdev(values []int64) decimal.Decimal {
	if len(values) < 2 {
		return decimal.Zero
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))
	var squares float64
	for _, v := range values {
		d := float64(v) - mean
		squares += d * d
	}
	return decimal.NewFromFloat(math.Sqrt(squares / float64(len(values)-1))).Round(0)
}

var fiftyPercent = decimal.NewFromInt(50)

func buildWarnings(s *FinancialSummary) []string {
	var warnings []string

	if s.NonPositiveAccounts > 0 {
		warnings = append(warnings, fmt.Sprintf("%d account(s) at or below zero balance", s.NonPositiveAccounts))
	}

	if n := longestDeficitRun(s.Monthly); n >= 2 {
		warnings = append(warnings, fmt.Sprintf("%d consecutive months spending exceeded income", n))
	}

	if s.FixedExpenseRatio.GreaterThan(fiftyPercent) {
		warnings = append(warnings, fmt.Sprintf("fixed commitments consume %s%% of a typical month's spending", s.FixedExpenseRatio))
	}

	if s.Goal.MonthlySpendingLimit > 0 && s.Goal.CurrentMonthExpense > s.Goal.MonthlySpendingLimit {
		warnings = append(warnings, "monthly spending limit already exceeded")
	}

	return warnings
}

// longestDeficitRun returns the longest streak of consecutive months with
// negative net flow.
func longestDeficitRun(monthly []MonthlyFlow) int {
	longest, run := 0, 0
	for _, m := range monthly {
		if m.Net < 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// healthScore grades the summary 0..100 from a base of 50. Saving rate,
// cash endurance, and a low fixed-cost ratio add points; warnings withhold
// the stability bonus.
func healthScore(s *FinancialSummary) int {
	score := 50

	switch {
	case s.SavingRate.GreaterThan(decimal.NewFromInt(20)):
		score += 15
	case s.SavingRate.GreaterThan(decimal.NewFromInt(10)):
		score += 10
	case s.SavingRate.GreaterThan(decimal.Zero):
		score += 5
	}

	switch {
	case s.CashEnduranceMonths.GreaterThanOrEqual(decimal.NewFromInt(6)):
		score += 15
	case s.CashEnduranceMonths.GreaterThanOrEqual(decimal.NewFromInt(3)):
		score += 10
	case s.CashEnduranceMonths.GreaterThanOrEqual(decimal.NewFromInt(1)):
		score += 5
	}

	switch {
	case s.FixedExpenseRatio.LessThanOrEqual(decimal.NewFromInt(30)):
		score += 10
	case s.FixedExpenseRatio.LessThanOrEqual(fiftyPercent):
		score += 5
	}

	switch len(s.Warnings) {
	case 0:
		score += 10
	case 1:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

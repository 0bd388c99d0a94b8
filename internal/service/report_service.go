package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/narrative"
)

// ReportService renders a FinancialSummary into a data digest and asks the
// narrative generator to turn it into prose. Generation failures surface as
// *ReportError so handlers can distinguish an upstream outage from our own.
type ReportService struct {
	analysis *AnalysisService
	gen      narrative.Generator
}

// NewReportService creates a new ReportService.
func NewReportService(analysis *AnalysisService, gen narrative.Generator) *ReportService {
	return &ReportService{analysis: analysis, gen: gen}
}

// Report bundles the narrative with the summary it was generated from.
type Report struct {
	Narrative string
	Summary   *FinancialSummary
}

// GenerateReport builds the owner's summary and narrates it.
func (s *ReportService) GenerateReport(ctx context.Context, ownerID uuid.UUID) (*Report, error) {
	summary, err := s.analysis.BuildSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	text, err := s.narrate(ctx, summary)
	if err != nil {
		return nil, err
	}

	return &Report{Narrative: text, Summary: summary}, nil
}

func (s *ReportService) narrate(ctx context.Context, summary *FinancialSummary) (string, error) {
	text, err := s.gen.Generate(ctx, renderSummary(summary))
	if err != nil {
		return "", &ReportError{Err: err}
	}
	return text, nil
}

// renderSummary flattens the summary into the plain-text digest the model
// prompt carries. Every number the narrative may cite must appear here.
func renderSummary(s *FinancialSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "[Totals]\n")
	fmt.Fprintf(&b, "Total balance across active accounts: %d\n", s.TotalBalance)
	fmt.Fprintf(&b, "Lifetime income: %d, expense: %d, net: %d\n", s.TotalIncome, s.TotalExpense, s.NetFlow)
	fmt.Fprintf(&b, "Saving rate: %s%%, spending rate: %s%%, balance index: %s\n", s.SavingRate, s.SpendingRate, s.BalanceIndex)
	fmt.Fprintf(&b, "Monthly saving volatility: %s, expense volatility: %s\n", s.SavingVolatility, s.ExpenseVolatility)
	fmt.Fprintf(&b, "Average monthly expense: %d\n", s.AvgMonthlyExpense)
	fmt.Fprintf(&b, "Cash endurance: %s months\n\n", s.CashEnduranceMonths)

	fmt.Fprintf(&b, "[Monthly flow, oldest first]\n")
	for _, m := range s.Monthly {
		fmt.Fprintf(&b, "%d-%02d: income %d, expense %d, net %d\n", m.Year, int(m.Month), m.Income, m.Expense, m.Net)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "[Top expense categories]\n")
	for _, c := range s.TopCategories {
		fmt.Fprintf(&b, "%s: %d (%s%%)\n", c.Name, c.Total, c.Share)
	}
	fmt.Fprintf(&b, "Spending concentration index (HHI, 0-10000): %s\n", s.ConcentrationIndex)
	fmt.Fprintf(&b, "Satisfaction-tagged expense: %d\n", s.SatisfactionExpense)
	fmt.Fprintf(&b, "Expense entries with no memo or merchant: %s%%\n\n", s.ImpulseShare)

	fmt.Fprintf(&b, "[Timing]\n")
	fmt.Fprintf(&b, "Spend in days 1-15: %d, days 16-end: %d\n\n", s.EarlyMonthExpense, s.LateMonthExpense)

	fmt.Fprintf(&b, "[Fixed commitments]\n")
	fmt.Fprintf(&b, "Recurring income: %d, recurring expense: %d\n", s.FixedIncome, s.FixedExpense)
	fmt.Fprintf(&b, "Fixed expense ratio of typical month: %s%%\n", s.FixedExpenseRatio)
	for _, c := range s.Commitments {
		name := c.Merchant
		if name == "" {
			name = c.Memo
		}
		fmt.Fprintf(&b, "Day %d: %s, %d (%s)\n", c.DayOfMonth, name, c.Amount, c.Category)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "[Goal]\n")
	fmt.Fprintf(&b, "Saving target: %d (%s%% achieved)\n", s.Goal.TargetSaving, s.Goal.SavingAchieved)
	fmt.Fprintf(&b, "Monthly spending limit: %d, spent this month: %d (%s%% used)\n\n",
		s.Goal.MonthlySpendingLimit, s.Goal.CurrentMonthExpense, s.Goal.LimitUsed)

	fmt.Fprintf(&b, "[Health]\n")
	fmt.Fprintf(&b, "Health score: %d/100\n", s.HealthScore)
	if len(s.Warnings) == 0 {
		b.WriteString("Warnings: none\n")
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}

	return b.String()
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubGenerator records the summary it was handed.
type stubGenerator struct {
	gotSummary string
	text       string
	err        error
}

func (g *stubGenerator) Generate(_ context.Context, summary string) (string, error) {
	g.gotSummary = summary
	return g.text, g.err
}

func TestRenderSummary_CarriesEveryFigure(t *testing.T) {
	s := summarize(healthyInputs())
	text := renderSummary(s)

	assert.Contains(t, text, "Total balance across active accounts: 20000000")
	assert.Contains(t, text, "Lifetime income: 10000000, expense: 7000000, net: 3000000")
	assert.Contains(t, text, "Saving rate: 30%, spending rate: 70%, balance index: -40")
	assert.Contains(t, text, "Monthly saving volatility: 500000, expense volatility: 288675")
	assert.Contains(t, text, "2026-01: income 3000000, expense 2000000, net 1000000")
	assert.Contains(t, text, "Rent: 3500000 (50%)")
	assert.Contains(t, text, "Day 25: Landlord, 650000 (Rent)")
	assert.Contains(t, text, "Saving target: 10000000 (30% achieved)")
	assert.Contains(t, text, "Health score: 100/100")
	assert.Contains(t, text, "Warnings: none")
}

func TestRenderSummary_ListsWarnings(t *testing.T) {
	in := healthyInputs()
	in.nonPositive = 1
	text := renderSummary(summarize(in))

	assert.Contains(t, text, "Warning: 1 account(s) at or below zero balance")
	assert.NotContains(t, text, "Warnings: none")
}

func TestGenerateReport_WrapsGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model overloaded")}
	svc := &ReportService{gen: gen}

	summary := summarize(healthyInputs())
	text, err := svc.narrate(context.Background(), summary)

	assert.Empty(t, text)
	var reportErr *ReportError
	assert.ErrorAs(t, err, &reportErr)
	assert.ErrorContains(t, reportErr.Err, "model overloaded")
}

func TestGenerateReport_PassesRenderedSummary(t *testing.T) {
	gen := &stubGenerator{text: "Your finances look fine."}
	svc := &ReportService{gen: gen}

	summary := summarize(healthyInputs())
	summary.GeneratedAt = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	text, err := svc.narrate(context.Background(), summary)

	assert.NoError(t, err)
	assert.Equal(t, "Your finances look fine.", text)
	assert.True(t, strings.HasPrefix(gen.gotSummary, "Generated: 2026-03-15"))
}

package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// ReportSummary carries the headline figures the narrative was built from.
type ReportSummary struct {
	GeneratedAt         string   `json:"generatedAt" doc:"Snapshot time in RFC 3339"`
	TotalBalance        int64    `json:"totalBalance" doc:"Sum of active account balances in minor units"`
	TotalIncome         int64    `json:"totalIncome" doc:"Income over the analysis window in minor units"`
	TotalExpense        int64    `json:"totalExpense" doc:"Expense over the analysis window in minor units"`
	NetFlow             int64    `json:"netFlow" doc:"Income minus expense in minor units"`
	SavingRate          string   `json:"savingRate" doc:"Saving rate as a percentage"`
	CashEnduranceMonths string   `json:"cashEnduranceMonths" doc:"Months the balance covers average spending"`
	HealthScore         int      `json:"healthScore" doc:"Financial health score out of 100"`
	Warnings            []string `json:"warnings" doc:"Detected risk signals"`
}

// GenerateReportInput is the Huma input for generating a narrative report.
type GenerateReportInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
}

// GenerateReportResponse is the response body for a generated report.
type GenerateReportResponse struct {
	Narrative string        `json:"narrative" doc:"Plain-language assessment of the owner's finances"`
	Summary   ReportSummary `json:"summary" doc:"Figures the narrative cites"`
}

// GenerateReportOutput is the response for generating a report.
type GenerateReportOutput struct {
	Body GenerateReportResponse
}

// reportGenerator is the interface for producing narrative reports.
type reportGenerator interface {
	GenerateReport(ctx context.Context, ownerID uuid.UUID) (*service.Report, error)
}

// GenerateReportHandler handles POST /v1/report.
type GenerateReportHandler struct {
	ReportService reportGenerator
}

// NewGenerateReportHandler creates a new GenerateReportHandler.
func NewGenerateReportHandler(svc reportGenerator) *GenerateReportHandler {
	return &GenerateReportHandler{ReportService: svc}
}

// Register registers the generate report endpoint with the Huma API.
func (h *GenerateReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-report",
		Method:      http.MethodPost,
		Path:        "/v1/report",
		Summary:     "Generate a narrative report",
		Description: "Aggregates the ledger and asks the language model for a plain-language assessment. Returns 502 when the model is unavailable.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GenerateReportHandler) handle(ctx context.Context, input *GenerateReportInput) (*GenerateReportOutput, error) {
	ownerID, err := request.OwnerID(input.UserID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("generateReportMs")
	}
	rep, err := h.ReportService.GenerateReport(ctx, ownerID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, request.ServiceError(err, "failed to generate report")
	}
	if logData != nil {
		logData.AddData("healthScore", rep.Summary.HealthScore)
	}

	s := rep.Summary
	return &GenerateReportOutput{Body: GenerateReportResponse{
		Narrative: rep.Narrative,
		Summary: ReportSummary{
			GeneratedAt:         s.GeneratedAt.Format(time.RFC3339),
			TotalBalance:        s.TotalBalance,
			TotalIncome:         s.TotalIncome,
			TotalExpense:        s.TotalExpense,
			NetFlow:             s.NetFlow,
			SavingRate:          s.SavingRate.String(),
			CashEnduranceMonths: s.CashEnduranceMonths.String(),
			HealthScore:         s.HealthScore,
			Warnings:            s.Warnings,
		},
	}}, nil
}

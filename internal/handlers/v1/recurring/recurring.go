package recurring

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

const dateLayout = "2006-01-02"

// RecurringTransaction is the API response model for a recurring template.
type RecurringTransaction struct {
	ID           string `json:"id" doc:"Template UUID"`
	AccountID    string `json:"accountId" doc:"Account UUID"`
	CategoryID   string `json:"categoryId,omitempty" doc:"Category UUID"`
	TxType       string `json:"txType" doc:"Direction: IN or OUT"`
	Amount       int64  `json:"amount" doc:"Amount in minor units"`
	RecurringDay int    `json:"recurringDay" doc:"Day of month the template fires, 1-31"`
	Merchant     string `json:"merchant,omitempty" doc:"Counterparty"`
	Memo         string `json:"memo,omitempty" doc:"Free-form note"`
	StartDate    string `json:"startDate" doc:"First month the template applies, YYYY-MM-DD"`
	EndDate      string `json:"endDate,omitempty" doc:"Last day the template applies, YYYY-MM-DD"`
	IsActive     bool   `json:"isActive" doc:"Whether the scheduler considers this template"`
	LastExecuted string `json:"lastExecuted,omitempty" doc:"When the template last produced an entry, YYYY-MM-DD"`
}

func fromStorage(row *storage.RecurringTransaction) RecurringTransaction {
	converted := RecurringTransaction{
		ID:           row.ID.String(),
		AccountID:    row.AccountID.String(),
		TxType:       string(row.TxType),
		Amount:       row.Amount,
		RecurringDay: row.RecurringDay,
		Merchant:     row.Merchant,
		Memo:         row.Memo,
		StartDate:    row.StartDate.Format(dateLayout),
		IsActive:     row.IsActive,
	}
	if row.CategoryID != nil {
		converted.CategoryID = row.CategoryID.String()
	}
	if row.EndDate != nil {
		converted.EndDate = row.EndDate.Format(dateLayout)
	}
	if row.LastExecuted != nil {
		converted.LastExecuted = row.LastExecuted.Format(dateLayout)
	}
	return converted
}

// RecurringBody is the request body shared by create and update.
type RecurringBody struct {
	AccountID    string `json:"accountId" format:"uuid" doc:"Account UUID"`
	CategoryID   string `json:"categoryId,omitempty" format:"uuid" doc:"Category UUID"`
	TxType       string `json:"txType" enum:"IN,OUT" doc:"Direction: IN or OUT"`
	Amount       int64  `json:"amount" minimum:"1" doc:"Amount in minor units"`
	RecurringDay int    `json:"recurringDay" minimum:"1" maximum:"31" doc:"Day of month the template fires"`
	Merchant     string `json:"merchant,omitempty" doc:"Counterparty"`
	Memo         string `json:"memo,omitempty" doc:"Free-form note"`
	StartDate    string `json:"startDate" doc:"First month the template applies, YYYY-MM-DD"`
	EndDate      string `json:"endDate,omitempty" doc:"Last day the template applies, YYYY-MM-DD"`
	IsActive     *bool  `json:"isActive,omitempty" doc:"Whether the template is active, defaults to true"`
}

func parseRecurringBody(body *RecurringBody) (*service.RecurringInput, error) {
	accountID, err := uuid.FromString(body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}

	var categoryID *uuid.UUID
	if body.CategoryID != "" {
		id, err := uuid.FromString(body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		categoryID = &id
	}

	startDate, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD", err)
	}

	var endDate *time.Time
	if body.EndDate != "" {
		end, err := time.Parse(dateLayout, body.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD", err)
		}
		endDate = &end
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	return &service.RecurringInput{
		AccountID:    accountID,
		CategoryID:   categoryID,
		TxType:       storage.TxType(body.TxType),
		Amount:       body.Amount,
		RecurringDay: body.RecurringDay,
		Merchant:     body.Merchant,
		Memo:         body.Memo,
		StartDate:    startDate,
		EndDate:      endDate,
		IsActive:     active,
	}, nil
}

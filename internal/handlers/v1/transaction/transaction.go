package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	AccountID    string `json:"accountId" doc:"Account UUID"`
	CategoryID   string `json:"categoryId,omitempty" doc:"Category UUID"`
	TxType       string `json:"txType" doc:"Direction: IN or OUT"`
	Amount       int64  `json:"amount" doc:"Amount in minor units, always positive"`
	Merchant     string `json:"merchant,omitempty" doc:"Counterparty"`
	Memo         string `json:"memo,omitempty" doc:"Free-form note"`
	OccurredAt   string `json:"occurredAt" doc:"Transaction date, YYYY-MM-DD"`
	BalanceAfter *int64 `json:"balanceAfter,omitempty" doc:"Account balance right after this entry, absent for scheduler entries"`
	CreatedAt    string `json:"createdAt" doc:"Creation timestamp, RFC 3339"`
}

func fromService(tx *service.Transaction) Transaction {
	converted := Transaction{
		ID:           tx.ID.String(),
		AccountID:    tx.AccountID.String(),
		TxType:       string(tx.TxType),
		Amount:       tx.Amount,
		Merchant:     tx.Merchant,
		Memo:         tx.Memo,
		OccurredAt:   tx.OccurredAt.Format(dateLayout),
		BalanceAfter: tx.BalanceAfter,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		converted.CategoryID = tx.CategoryID.String()
	}
	return converted
}

// TransactionBody is the request body shared by create and update. Confirm
// acknowledges a prior 409 insufficient-funds response.
type TransactionBody struct {
	AccountID  string `json:"accountId" format:"uuid" doc:"Account UUID"`
	CategoryID string `json:"categoryId,omitempty" format:"uuid" doc:"Category UUID"`
	TxType     string `json:"txType" enum:"IN,OUT" doc:"Direction: IN or OUT"`
	Amount     int64  `json:"amount" minimum:"1" doc:"Amount in minor units"`
	Merchant   string `json:"merchant,omitempty" doc:"Counterparty"`
	Memo       string `json:"memo,omitempty" doc:"Free-form note"`
	OccurredAt string `json:"occurredAt" doc:"Transaction date, YYYY-MM-DD"`
	Confirm    bool   `json:"confirm,omitempty" doc:"Proceed despite insufficient funds"`
}

func parseTransactionBody(body *TransactionBody) (*service.TransactionInput, error) {
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

	occurredAt, err := time.Parse(dateLayout, body.OccurredAt)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid occurredAt, expected YYYY-MM-DD", err)
	}

	return &service.TransactionInput{
		AccountID:  accountID,
		CategoryID: categoryID,
		TxType:     storage.TxType(body.TxType),
		Amount:     body.Amount,
		Merchant:   body.Merchant,
		Memo:       body.Memo,
		OccurredAt: occurredAt,
		Confirm:    body.Confirm,
	}, nil
}

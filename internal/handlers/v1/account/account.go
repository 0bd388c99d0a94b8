package account

import (
	"time"

	"github.com/moneybook-labs/accountbook-server/internal/service"
)

// Account is the API response model for an account. The account number is
// always masked.
type Account struct {
	ID            string `json:"id" doc:"Account UUID"`
	Name          string `json:"name" doc:"Account name"`
	BankName      string `json:"bankName,omitempty" doc:"Bank or institution name"`
	AccountNumber string `json:"accountNumber,omitempty" doc:"Masked account number"`
	Balance       int64  `json:"balance" doc:"Current balance in minor units"`
	IsActive      bool   `json:"isActive" doc:"Whether the account is active"`
	CreatedAt     string `json:"createdAt" doc:"Creation timestamp, RFC 3339"`
}

func fromService(a *service.Account) Account {
	return Account{
		ID:            a.ID.String(),
		Name:          a.Name,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

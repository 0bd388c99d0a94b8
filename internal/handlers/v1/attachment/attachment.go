package attachment

import (
	"time"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Attachment is the API model for a receipt attached to a transaction.
type Attachment struct {
	ID            string `json:"id" doc:"Attachment UUID"`
	TransactionID string `json:"transactionId" doc:"Transaction the receipt belongs to"`
	OriginalName  string `json:"originalName" doc:"Filename supplied at upload"`
	SizeBytes     int64  `json:"sizeBytes" doc:"File size in bytes"`
	UploadedAt    string `json:"uploadedAt" doc:"Upload time in RFC 3339"`
}

func fromStorage(row *storage.Attachment) Attachment {
	return Attachment{
		ID:            row.ID.String(),
		TransactionID: row.TransactionID.String(),
		OriginalName:  row.OriginalName,
		SizeBytes:     row.SizeBytes,
		UploadedAt:    row.UploadedAt.Format(time.RFC3339),
	}
}

package service

import (
	"time"

	"github.com/moneybook-labs/accountbook-server/internal/blobstore"
	"github.com/moneybook-labs/accountbook-server/internal/narrative"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Recurring   *RecurringService
	Category    *CategoryService
	Attachment  *AttachmentService
	Goal        *GoalService
	Analysis    *AnalysisService
	Report      *ReportService
}

// NewService creates a new Service with the given storage and collaborators.
func NewService(store *storage.Storage, blobs blobstore.Store, gen narrative.Generator) *Service {
	analysis := NewAnalysisService(store, time.Now)
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Recurring:   NewRecurringService(store, time.Now),
		Category:    NewCategoryService(store),
		Attachment:  NewAttachmentService(store, blobs, time.Now),
		Goal:        NewGoalService(store),
		Analysis:    analysis,
		Report:      NewReportService(analysis, gen),
	}
}

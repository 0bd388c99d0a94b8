package storage

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/moneybook-labs/accountbook-server/internal/config"
)

// ErrNotFound is returned when a row does not exist under the given owner.
// Rows owned by a different user are indistinguishable from missing rows.
var ErrNotFound = errors.New("storage: not found")

type Storage struct {
	DB           *sql.DB
	Accounts     IAccountTable
	Transactions ITransactionTable
	Recurrings   IRecurringTable
	Categories   ICategoryTable
	Attachments  IAttachmentTable
	Goals        IGoalTable
	Reports      IReportTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.sql.Open")
	}

	exec := bob.NewDB(db)

	return &Storage{
		DB:           db,
		Accounts:     NewAccountsTable(exec),
		Transactions: NewTransactionsTable(exec),
		Recurrings:   NewRecurringsTable(exec),
		Categories:   NewCategoriesTable(exec),
		Attachments:  NewAttachmentsTable(exec),
		Goals:        NewGoalsTable(exec),
		Reports:      NewReportsTable(exec),
	}
}

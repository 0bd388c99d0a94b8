package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/account"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/attachment"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/category"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/goal"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/recurring"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/report"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/status"
	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/transaction"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Accountbook API", "1.0.0"))
	registerHandlers(humaAPI, r.Service)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func registerHandlers(api huma.API, svc *service.Service) {
	account.NewCreateAccountHandler(svc.Account).Register(api)
	account.NewListAccountsHandler(svc.Account).Register(api)
	account.NewGetAccountHandler(svc.Account).Register(api)
	account.NewUpdateAccountHandler(svc.Account).Register(api)
	account.NewDeleteAccountHandler(svc.Account).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)

	recurring.NewCreateRecurringHandler(svc.Recurring).Register(api)
	recurring.NewListRecurringsHandler(svc.Recurring).Register(api)
	recurring.NewUpdateRecurringHandler(svc.Recurring).Register(api)
	recurring.NewDeleteRecurringHandler(svc.Recurring).Register(api)
	recurring.NewToggleRecurringHandler(svc.Recurring).Register(api)

	attachment.NewUploadAttachmentHandler(svc.Attachment).Register(api)
	attachment.NewGetAttachmentHandler(svc.Attachment).Register(api)
	attachment.NewDeleteAttachmentHandler(svc.Attachment).Register(api)

	goal.NewGetGoalHandler(svc.Goal).Register(api)
	goal.NewSetGoalHandler(svc.Goal).Register(api)

	category.NewListCategoriesHandler(svc.Category).Register(api)

	report.NewGenerateReportHandler(svc.Report).Register(api)
}

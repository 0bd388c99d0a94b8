// Runs one materialization pass over due recurring templates. The server
// schedules this daily on its own; the script exists for manual catch-up.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/config"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(env)
	recurring := service.NewRecurringService(dbStorage, time.Now)

	result, err := recurring.RunDue(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("recurring pass failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"created": result.Created,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("recurring pass complete")
}

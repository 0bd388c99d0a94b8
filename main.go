package main

import (
	"context"
	"sync"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/api"
	"github.com/moneybook-labs/accountbook-server/internal/blobstore"
	"github.com/moneybook-labs/accountbook-server/internal/config"
	"github.com/moneybook-labs/accountbook-server/internal/logging"
	"github.com/moneybook-labs/accountbook-server/internal/narrative"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	logger := logging.SetupLogging()
	logrus.Info("accountbook-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx := context.Background()

	blobs, err := newBlobStore(ctx, envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("blobstore setup")
		return
	}

	gen, err := narrative.NewGeminiGenerator(ctx, envConfig.GeminiModel)
	if err != nil {
		logrus.WithError(err).Fatal("narrative generator setup")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage, blobs, gen)

	scheduler := cron.New()
	_, err = scheduler.AddFunc("@daily", func() {
		result, err := svc.Recurring.RunDue(context.Background())
		if err != nil {
			logrus.WithError(err).Error("recurring pass failed")
			return
		}
		logrus.WithFields(logrus.Fields{
			"created": result.Created,
			"skipped": result.Skipped,
			"failed":  result.Failed,
		}).Info("recurring pass complete")
	})
	if err != nil {
		logrus.WithError(err).Fatal("scheduler setup")
		return
	}
	scheduler.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

func newBlobStore(ctx context.Context, env *config.Config) (blobstore.Store, error) {
	if env.AttachmentStore == "gcs" {
		return blobstore.NewGCSStore(ctx, env.AttachmentBucket)
	}
	return blobstore.NewDiskStore(env.AttachmentDir)
}

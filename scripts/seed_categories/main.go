// Seeds the shared category catalogue. Safe to rerun only against an empty
// categories table; it does not deduplicate.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/moneybook-labs/accountbook-server/internal/config"
	"github.com/moneybook-labs/accountbook-server/internal/service"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

var defaultCategories = []storage.CategoryCreate{
	{Name: "Salary", CatType: storage.CatTypeIn},
	{Name: "Interest", CatType: storage.CatTypeIn},
	{Name: "Allowance", CatType: storage.CatTypeIn},
	{Name: "Rent", CatType: storage.CatTypeOut},
	{Name: "Utilities", CatType: storage.CatTypeOut},
	{Name: "Groceries", CatType: storage.CatTypeOut},
	{Name: "Transport", CatType: storage.CatTypeOut},
	{Name: "Insurance", CatType: storage.CatTypeOut},
	{Name: "Medical", CatType: storage.CatTypeOut},
	{Name: "Education", CatType: storage.CatTypeOut},
	{Name: "Dining Out", CatType: storage.CatTypeOut, IsSatisfaction: true},
	{Name: "Entertainment", CatType: storage.CatTypeOut, IsSatisfaction: true},
	{Name: "Hobbies", CatType: storage.CatTypeOut, IsSatisfaction: true},
	{Name: "Travel", CatType: storage.CatTypeOut, IsSatisfaction: true},
	{Name: "Shopping", CatType: storage.CatTypeOut, IsSatisfaction: true},
	{Name: "Transfer", CatType: storage.CatTypeCommon},
	{Name: "Other", CatType: storage.CatTypeCommon},
}

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
	categories := service.NewCategoryService(dbStorage)

	ctx := context.Background()
	for _, create := range defaultCategories {
		c := create
		id, err := categories.CreateCategory(ctx, &c)
		if err != nil {
			logrus.WithError(err).WithField("name", c.Name).Fatal("seeding category")
			return
		}
		logrus.WithFields(logrus.Fields{"name": c.Name, "id": id}).Info("seeded category")
	}
}

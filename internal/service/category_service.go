package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// CategoryService exposes the shared category catalogue. Categories are
// global: every owner sees the same set.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns the full catalogue.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*storage.Category, error) {
	return s.storage.Categories.List(ctx)
}

// CreateCategory adds a catalogue entry. Used by seeding, not the API.
func (s *CategoryService) CreateCategory(ctx context.Context, create *storage.CategoryCreate) (uuid.UUID, error) {
	if create.Name == "" {
		return uuid.Nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if create.CatType != storage.CatTypeIn && create.CatType != storage.CatTypeOut && create.CatType != storage.CatTypeCommon {
		return uuid.Nil, &ValidationError{Field: "cat_type", Message: "must be IN, OUT, or COMMON"}
	}
	return s.storage.Categories.Insert(ctx, create)
}

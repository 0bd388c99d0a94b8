package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moneybook-labs/accountbook-server/internal/handlers/v1/request"
	"github.com/moneybook-labs/accountbook-server/internal/storage"
)

// Category is the API model for a bookkeeping category.
type Category struct {
	ID             string `json:"id" doc:"Category UUID"`
	Name           string `json:"name" doc:"Display name"`
	CatType        string `json:"catType" doc:"Direction the category applies to: IN, OUT, or COMMON"`
	IsSatisfaction bool   `json:"isSatisfaction" doc:"Whether spending here counts as discretionary"`
}

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesResponse is the response body for listing categories.
type ListCategoriesResponse struct {
	Categories []Category `json:"categories" doc:"The category catalogue"`
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// categoryLister is the interface for reading the category catalogue.
type categoryLister interface {
	ListCategories(ctx context.Context) ([]*storage.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "The catalogue is shared across all users.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	rows, err := h.CategoryService.ListCategories(ctx)
	if err != nil {
		return nil, request.ServiceError(err, "failed to list categories")
	}

	converted := make([]Category, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, Category{
			ID:             row.ID.String(),
			Name:           row.Name,
			CatType:        string(row.CatType),
			IsSatisfaction: row.IsSatisfaction,
		})
	}
	return &ListCategoriesOutput{Body: ListCategoriesResponse{Categories: converted}}, nil
}

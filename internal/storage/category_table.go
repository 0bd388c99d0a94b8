package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// CatType classifies a category as income, expense, or usable for both.
type CatType string

const (
	CatTypeIn     CatType = "IN"
	CatTypeOut    CatType = "OUT"
	CatTypeCommon CatType = "COMMON"
)

// Category is a global, read-mostly classification row. Categories are not
// owner-scoped; satisfaction-flagged ones feed the satisfaction-spending
// analytics.
type Category struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	CatType        CatType   `db:"cat_type"`
	IsSatisfaction bool      `db:"is_satisfaction"`
}

// CategoryCreate is the input for seeding a category.
type CategoryCreate struct {
	Name           string
	CatType        CatType
	IsSatisfaction bool
}

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

const categoryColumns = "id, name, cat_type, is_satisfaction"

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(categoryColumns)),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (t *CategoriesTable) List(ctx context.Context) ([]*Category, error) {
	query := psql.Select(
		sm.Columns(psql.Raw(categoryColumns)),
		sm.From("categories"),
		sm.OrderBy("name").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}

	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("categories", "name", "cat_type", "is_satisfaction"),
		im.Values(psql.Arg(create.Name, create.CatType, create.IsSatisfaction)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

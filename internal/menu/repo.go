package menu

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/menu"
)

type MenuRepository interface {
	CreateCategory(ctx context.Context, c *menu.Category) error
	FindCategoryByID(ctx context.Context, id int64) (*menu.Category, error)
	UpdateCategory(ctx context.Context, c *menu.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]menu.Category, error)

	CreateItem(ctx context.Context, it *menu.Item) error
	FindItemByID(ctx context.Context, id int64) (*menu.Item, error)
	FindItemByName(ctx context.Context, name string) (*menu.Item, error)
	UpdateItem(ctx context.Context, it *menu.Item) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context) ([]menu.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID int64) ([]menu.Item, error)
	ListFeaturedItems(ctx context.Context, limit int) ([]menu.Item, error)
	SearchItems(ctx context.Context, query string) ([]menu.Item, error)

	CreateSpecial(ctx context.Context, sp *menu.SpecialItem) error
	FindSpecialByID(ctx context.Context, id int64) (*menu.SpecialItem, error)
	UpdateSpecial(ctx context.Context, sp *menu.SpecialItem) error
	DeleteSpecial(ctx context.Context, id int64) error
	ListSpecials(ctx context.Context, limit int) ([]menu.SpecialItem, error)
}

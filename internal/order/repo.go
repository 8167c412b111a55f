package order

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/menu"
	"github.com/sushinaruto/backend/internal/types/order"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	FindOrderByID(ctx context.Context, id int64) (*order.Order, error)
	ListOrdersByIDs(ctx context.Context, ids []int64) ([]order.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]order.Order, error)
	ListOrdersByEmailAndStatus(ctx context.Context, email string, status order.Status) ([]order.Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []order.Status) ([]order.Order, error)
	ListActiveOrders(ctx context.Context) ([]order.Order, error)
	ListOrdersFiltered(ctx context.Context, status, date string) ([]order.Order, error)
	DistinctStatuses(ctx context.Context) ([]order.Status, error)
	UpdateOrderStatus(ctx context.Context, id int64, status order.Status) error
	CountOrdersByStatus(ctx context.Context, statuses []order.Status) (int, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// MenuLookup resolves a menu item by its stored name. Order rows keep the
// item as free text, so the association is best-effort: a renamed or
// removed item simply yields no image.
type MenuLookup interface {
	FindItemByName(ctx context.Context, name string) (*menu.Item, error)
}

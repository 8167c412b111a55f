package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/types/contact"
	"github.com/sushinaruto/backend/internal/types/menu"
	"github.com/sushinaruto/backend/internal/types/order"
	"github.com/sushinaruto/backend/internal/types/reservation"
)

// MetricsRepository aggregates over orders for the dashboard.
type MetricsRepository interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, statuses []order.Status) (int, error)
	CountOrdersCreatedSince(ctx context.Context, since time.Time) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RecentOrders(ctx context.Context, limit int) ([]order.Order, error)
	TopProducts(ctx context.Context, limit int) ([]menu.ProductSales, error)
}

type FeedbackRepository interface {
	RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error)
}

type ReservationsRepository interface {
	UpcomingReservations(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error)
}

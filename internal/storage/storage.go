package storage

import (
	"context"

	contactsvc "github.com/sushinaruto/backend/internal/contact"
	"github.com/sushinaruto/backend/internal/dashboard"
	menusvc "github.com/sushinaruto/backend/internal/menu"
	ordersvc "github.com/sushinaruto/backend/internal/order"
	reservationsvc "github.com/sushinaruto/backend/internal/reservation"
	usersvc "github.com/sushinaruto/backend/internal/user"
)

// Storage is everything the service layer needs from persistence, one
// implementation behind all the per-feature repository interfaces.
type Storage interface {
	ordersvc.OrderRepository
	menusvc.MenuRepository
	reservationsvc.ReservationRepository
	contactsvc.ContactRepository
	usersvc.UserRepository
	dashboard.MetricsRepository

	Ping(ctx context.Context) error
	Close() error
}

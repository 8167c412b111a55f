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

type Service struct {
	metrics      MetricsRepository
	feedback     FeedbackRepository
	reservations ReservationsRepository
}

func NewService(metrics MetricsRepository, feedback FeedbackRepository, reservations ReservationsRepository) *Service {
	return &Service{metrics: metrics, feedback: feedback, reservations: reservations}
}

type Summary struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	InProgress      int             `json:"in_progress"`
	DeliveredOrders int             `json:"delivered_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
	OrdersToday     int             `json:"orders_today"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

// Metrics computes the order summary shown at the top of the dashboard.
func (s *Service) Metrics(ctx context.Context) (*Summary, error) {
	total, err := s.metrics.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.metrics.CountOrdersByStatus(ctx, []order.Status{order.StatusPending})
	if err != nil {
		return nil, err
	}
	inProgress, err := s.metrics.CountOrdersByStatus(ctx, []order.Status{
		order.StatusAccepted, order.StatusMaking, order.StatusReadyToCollect, order.StatusOutForDelivery,
	})
	if err != nil {
		return nil, err
	}
	delivered, err := s.metrics.CountOrdersByStatus(ctx, []order.Status{order.StatusDelivered})
	if err != nil {
		return nil, err
	}
	cancelled, err := s.metrics.CountOrdersByStatus(ctx, []order.Status{order.StatusCancelled})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.metrics.CountOrdersCreatedSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	revenue, err := s.metrics.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalOrders:     total,
		PendingOrders:   pending,
		InProgress:      inProgress,
		DeliveredOrders: delivered,
		CancelledOrders: cancelled,
		OrdersToday:     today,
		TotalRevenue:    revenue,
	}, nil
}

type Data struct {
	Orders       []order.Order             `json:"orders"`
	TopProducts  []menu.ProductSales       `json:"top_products"`
	Feedback     []contact.Contact         `json:"feedback"`
	Reservations []reservation.Reservation `json:"reservations"`
}

// Data assembles the dashboard's detail panels.
func (s *Service) Data(ctx context.Context) (*Data, error) {
	orders, err := s.metrics.RecentOrders(ctx, 10)
	if err != nil {
		return nil, err
	}
	top, err := s.metrics.TopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	feedback, err := s.feedback.RecentContacts(ctx, 5)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format("2006-01-02")
	upcoming, err := s.reservations.UpcomingReservations(ctx, today, 5)
	if err != nil {
		return nil, err
	}

	return &Data{
		Orders:       orders,
		TopProducts:  top,
		Feedback:     feedback,
		Reservations: upcoming,
	}, nil
}

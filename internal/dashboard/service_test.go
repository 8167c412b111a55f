package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/sushinaruto/backend/internal/types/contact"
	"github.com/sushinaruto/backend/internal/types/menu"
	"github.com/sushinaruto/backend/internal/types/order"
	"github.com/sushinaruto/backend/internal/types/reservation"
)

type stubMetricsRepo struct {
	byStatus map[string]int
}

func (r *stubMetricsRepo) CountOrders(ctx context.Context) (int, error) {
	return 42, nil
}

func (r *stubMetricsRepo) CountOrdersByStatus(ctx context.Context, statuses []order.Status) (int, error) {
	n := 0
	for _, st := range statuses {
		n += r.byStatus[string(st)]
	}
	return n, nil
}

func (r *stubMetricsRepo) CountOrdersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return 3, nil
}

func (r *stubMetricsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("1234.50"), nil
}

func (r *stubMetricsRepo) RecentOrders(ctx context.Context, limit int) ([]order.Order, error) {
	return []order.Order{{ID: 1, Item: "Salmon Roll"}}, nil
}

func (r *stubMetricsRepo) TopProducts(ctx context.Context, limit int) ([]menu.ProductSales, error) {
	return []menu.ProductSales{{Name: "Salmon Roll", Category: "Rolls", Sales: 7}}, nil
}

type stubFeedbackRepo struct{}

func (r *stubFeedbackRepo) RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	return []contact.Contact{{ID: 1, Name: "Alice"}}, nil
}

type stubReservationsRepo struct {
	gotFrom string
}

func (r *stubReservationsRepo) UpcomingReservations(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error) {
	r.gotFrom = fromDate
	return []reservation.Reservation{{ID: 1, Name: "Bob"}}, nil
}

func TestMetricsSummary(t *testing.T) {
	metrics := &stubMetricsRepo{byStatus: map[string]int{
		"pending":          5,
		"accepted":         2,
		"making":           1,
		"ready_to_collect": 1,
		"out_for_delivery": 1,
		"delivered":        30,
		"cancelled":        2,
	}}
	svc := NewService(metrics, &stubFeedbackRepo{}, &stubReservationsRepo{})

	sum, err := svc.Metrics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, sum.TotalOrders)
	assert.Equal(t, 5, sum.PendingOrders)
	assert.Equal(t, 5, sum.InProgress)
	assert.Equal(t, 30, sum.DeliveredOrders)
	assert.Equal(t, 2, sum.CancelledOrders)
	assert.Equal(t, 3, sum.OrdersToday)
	assert.Equal(t, "1234.5", sum.TotalRevenue.String())
}

func TestDataPanels(t *testing.T) {
	reservations := &stubReservationsRepo{}
	svc := NewService(&stubMetricsRepo{}, &stubFeedbackRepo{}, reservations)

	data, err := svc.Data(context.Background())
	assert.NoError(t, err)
	assert.Len(t, data.Orders, 1)
	assert.Len(t, data.TopProducts, 1)
	assert.Len(t, data.Feedback, 1)
	assert.Len(t, data.Reservations, 1)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), reservations.gotFrom)
}

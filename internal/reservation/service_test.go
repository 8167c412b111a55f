package reservation

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/types/reservation"
)

type mockRepo struct {
	createFn       func(ctx context.Context, res *reservation.Reservation) error
	findByIDFn     func(ctx context.Context, id int64) (*reservation.Reservation, error)
	listFn         func(ctx context.Context, date, status string) ([]reservation.Reservation, error)
	updateStatusFn func(ctx context.Context, id int64, status reservation.Status) error
	deleteFn       func(ctx context.Context, id int64) error
	upcomingFn     func(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error)
}

func (m *mockRepo) CreateReservation(ctx context.Context, res *reservation.Reservation) error {
	return m.createFn(ctx, res)
}
func (m *mockRepo) FindReservationByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRepo) ListReservations(ctx context.Context, date, status string) ([]reservation.Reservation, error) {
	return m.listFn(ctx, date, status)
}
func (m *mockRepo) UpdateReservationStatus(ctx context.Context, id int64, status reservation.Status) error {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockRepo) DeleteReservation(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
func (m *mockRepo) UpcomingReservations(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error) {
	return m.upcomingFn(ctx, fromDate, limit)
}

type mockNotifier struct {
	sent []notify.Message
}

func (m *mockNotifier) Dispatch(ctx context.Context, msg notify.Message) {
	m.sent = append(m.sent, msg)
}

func TestCreateDefaultsAndAcknowledges(t *testing.T) {
	var created *reservation.Reservation
	repo := &mockRepo{
		createFn: func(ctx context.Context, res *reservation.Reservation) error {
			res.ID = 1
			created = res
			return nil
		},
	}
	n := &mockNotifier{}
	svc := NewService(repo, n)

	res, err := svc.Create(context.Background(), CreateRequest{
		Email:  "alice@example.com",
		Date:   "2026-09-05",
		Time:   "19:00",
		Guests: "four",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Guest", res.Name)
	assert.Equal(t, 1, res.Guests)
	assert.Equal(t, reservation.StatusPending, res.Status)
	assert.Same(t, created, res)
	assert.Len(t, n.sent, 1)
	assert.Equal(t, []string{"alice@example.com"}, n.sent[0].To)
}

func TestCreateWithoutEmailSkipsAcknowledgement(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, res *reservation.Reservation) error { return nil },
	}
	n := &mockNotifier{}
	svc := NewService(repo, n)

	_, err := svc.Create(context.Background(), CreateRequest{Name: "Walk-in", Date: "2026-09-05", Time: "19:00"})
	assert.NoError(t, err)
	assert.Empty(t, n.sent)
}

func TestUpdateStatusConfirmsAndNotifies(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id int64) (*reservation.Reservation, error) {
			return &reservation.Reservation{ID: id, Name: "Alice", Email: "alice@example.com", Date: "2026-09-05", Time: "19:00", Status: reservation.StatusPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status reservation.Status) error {
			assert.Equal(t, reservation.StatusConfirmed, status)
			return nil
		},
	}
	n := &mockNotifier{}
	svc := NewService(repo, n)

	res, err := svc.UpdateStatus(context.Background(), 1, reservation.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status)
	assert.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Subject, "confirmed")
}

func TestUpdateStatusRejectsPending(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, reservation.StatusPending)
	assert.Equal(t, ErrInvalidStatus, err)
}

func TestSendStatusEmailDoesNotTouchStatus(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id int64) (*reservation.Reservation, error) {
			return &reservation.Reservation{ID: id, Name: "Alice", Email: "alice@example.com", Date: "2026-09-05", Time: "19:00", Status: reservation.StatusPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status reservation.Status) error {
			t.Fatal("status must not change")
			return nil
		},
	}
	n := &mockNotifier{}
	svc := NewService(repo, n)

	assert.NoError(t, svc.SendStatusEmail(context.Background(), 1, "cancelled"))
	assert.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Subject, "cancelled")
}

func TestSendStatusEmailUnknownType(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id int64) (*reservation.Reservation, error) {
			return &reservation.Reservation{ID: id}, nil
		},
	}
	svc := NewService(repo, &mockNotifier{})

	assert.Equal(t, ErrInvalidMailType, svc.SendStatusEmail(context.Background(), 1, "maybe"))
}

func TestGetMissingReservation(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id int64) (*reservation.Reservation, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(repo, &mockNotifier{})

	_, err := svc.Get(context.Background(), 404)
	assert.Equal(t, ErrReservationNotFound, err)
}

package reservation

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/reservation"
)

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res *reservation.Reservation) error
	FindReservationByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ListReservations(ctx context.Context, date, status string) ([]reservation.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status reservation.Status) error
	DeleteReservation(ctx context.Context, id int64) error
	UpcomingReservations(ctx context.Context, fromDate string, limit int) ([]reservation.Reservation, error)
}

package reservation

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"time"

	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/types/reservation"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidMailType     = errors.New("invalid email type")
)

type Notifier interface {
	Dispatch(ctx context.Context, msg notify.Message)
}

type Service struct {
	repo     ReservationRepository
	notifier Notifier
}

func NewService(repo ReservationRepository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

type CreateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          string `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// Create stores a reservation request and, when an address was supplied,
// sends a best-effort acknowledgement. Guest counts are lenient: anything
// unparsable becomes one guest.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*reservation.Reservation, error) {
	name := req.Name
	if name == "" {
		name = "Guest"
	}
	guests := 1
	if n, err := strconv.Atoi(req.Guests); err == nil && n >= 1 {
		guests = n
	}

	res := &reservation.Reservation{
		Name:            name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          guests,
		SpecialRequests: req.SpecialRequests,
		Status:          reservation.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	if res.Email != "" {
		s.notifier.Dispatch(ctx, notify.Message{
			To:      []string{res.Email},
			Subject: "Reservation received",
			HTML: fmt.Sprintf("<p>Thank you %s, your reservation for %s at %s has been received.</p>",
				html.EscapeString(res.Name), html.EscapeString(res.Date), html.EscapeString(res.Time)),
		})
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, date, status string) ([]reservation.Reservation, error) {
	return s.repo.ListReservations(ctx, date, status)
}

func (s *Service) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	res, err := s.repo.FindReservationByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

// UpdateStatus confirms or cancels a reservation and notifies the guest.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status reservation.Status) (*reservation.Reservation, error) {
	if status != reservation.StatusConfirmed && status != reservation.StatusCancelled {
		return nil, ErrInvalidStatus
	}
	res, err := s.repo.FindReservationByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	if err := s.repo.UpdateReservationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	res.Status = status

	s.notifier.Dispatch(ctx, notify.Message{
		To:      []string{res.Email},
		Subject: fmt.Sprintf("Your table reservation for %s has been %s", res.Date, status),
		HTML: fmt.Sprintf("<p>Dear %s,</p><p>Your table reservation for %s at %s has been %s.</p>",
			html.EscapeString(res.Name), html.EscapeString(res.Date), html.EscapeString(res.Time), status),
	})
	return res, nil
}

// SendStatusEmail re-sends the confirmation or cancellation notice
// without touching the stored status.
func (s *Service) SendStatusEmail(ctx context.Context, id int64, mailType string) error {
	res, err := s.repo.FindReservationByID(ctx, id)
	if err != nil {
		return ErrReservationNotFound
	}

	var subject, body string
	switch mailType {
	case "confirmed":
		subject = fmt.Sprintf("Your table reservation for %s is confirmed", res.Date)
		body = fmt.Sprintf("<p>Dear %s,</p><p>Your table reservation for %s at %s has been confirmed.</p>",
			html.EscapeString(res.Name), html.EscapeString(res.Date), html.EscapeString(res.Time))
	case "cancelled":
		subject = fmt.Sprintf("Your table reservation for %s is cancelled", res.Date)
		body = fmt.Sprintf("<p>Dear %s,</p><p>We regret to inform you that your table reservation for %s at %s has been cancelled.</p>",
			html.EscapeString(res.Name), html.EscapeString(res.Date), html.EscapeString(res.Time))
	default:
		return ErrInvalidMailType
	}

	s.notifier.Dispatch(ctx, notify.Message{To: []string{res.Email}, Subject: subject, HTML: body})
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindReservationByID(ctx, id); err != nil {
		return ErrReservationNotFound
	}
	return s.repo.DeleteReservation(ctx, id)
}

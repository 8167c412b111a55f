package order

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/order"
)

// liveStatuses is the staff live board filter.
var liveStatuses = []order.Status{
	order.StatusPending,
	order.StatusAccepted,
	order.StatusMaking,
	order.StatusReadyToCollect,
}

type BoardEntry struct {
	Order order.Order `json:"order"`
	Image string      `json:"image,omitempty"`
}

type Detail struct {
	Order     order.Order `json:"order"`
	Image     string      `json:"image,omitempty"`
	CanCancel bool        `json:"can_cancel"`
	StepIndex int         `json:"step_index"`
	Steps     []string    `json:"steps"`
}

// History lists the customer's orders, newest first.
func (s *Service) History(ctx context.Context, email string) ([]order.Order, error) {
	return s.repo.ListOrdersByEmail(ctx, email)
}

// LiveTrack lists the customer's orders still waiting for acceptance.
func (s *Service) LiveTrack(ctx context.Context, email string) ([]order.Order, error) {
	return s.repo.ListOrdersByEmailAndStatus(ctx, email, order.StatusPending)
}

// Detail returns one order with its tracking-card projection. Staff may
// view any order; customers only their own, and a foreign order reads as
// not found.
func (s *Service) Detail(ctx context.Context, email string, staff bool, orderID int64) (*Detail, error) {
	o, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !staff && o.Email != email {
		return nil, ErrOrderNotFound
	}

	stepIndex := -1
	steps := make([]string, len(order.Steps))
	for i, st := range order.Steps {
		steps[i] = st.Display()
		if st == o.Status {
			stepIndex = i
		}
	}

	return &Detail{
		Order:     *o,
		Image:     s.imageFor(ctx, o.Item),
		CanCancel: o.Status == order.StatusPending || o.Status == order.StatusAccepted,
		StepIndex: stepIndex,
		Steps:     steps,
	}, nil
}

// LiveBoard lists every order a member of staff needs to act on, each
// annotated with the menu image when the item name still resolves.
func (s *Service) LiveBoard(ctx context.Context) ([]BoardEntry, error) {
	orders, err := s.repo.ListOrdersByStatus(ctx, liveStatuses)
	if err != nil {
		return nil, err
	}
	entries := make([]BoardEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, BoardEntry{Order: o, Image: s.imageFor(ctx, o.Item)})
	}
	return entries, nil
}

// FoodTable lists all non-terminal orders for the prep table.
func (s *Service) FoodTable(ctx context.Context) ([]order.Order, error) {
	return s.repo.ListActiveOrders(ctx)
}

// ManageHistory lists all orders with optional exact status and creation
// date filters, plus the distinct statuses present for the filter UI.
func (s *Service) ManageHistory(ctx context.Context, status, date string) ([]order.Order, []order.Status, error) {
	orders, err := s.repo.ListOrdersFiltered(ctx, status, date)
	if err != nil {
		return nil, nil, err
	}
	statuses, err := s.repo.DistinctStatuses(ctx)
	if err != nil {
		return nil, nil, err
	}
	return orders, statuses, nil
}

func (s *Service) imageFor(ctx context.Context, itemName string) string {
	item, err := s.menus.FindItemByName(ctx, itemName)
	if err != nil || item == nil {
		return ""
	}
	return item.Image
}

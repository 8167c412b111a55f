package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/types/order"
)

var (
	ErrEmailRequired    = errors.New("email required")
	ErrMissingFields    = errors.New("missing required fields")
	ErrNoOrdersSelected = errors.New("no orders selected")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidAction    = errors.New("invalid action")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrOrderClosed      = errors.New("order already delivered or cancelled")
)

// Notifier delivers a message best-effort; it cannot fail the caller.
type Notifier interface {
	Dispatch(ctx context.Context, msg notify.Message)
}

type Service struct {
	repo     OrderRepository
	menus    MenuLookup
	notifier Notifier
	opsEmail string
}

func NewService(repo OrderRepository, menus MenuLookup, notifier Notifier, opsEmail string) *Service {
	return &Service{repo: repo, menus: menus, notifier: notifier, opsEmail: opsEmail}
}

type LineItem struct {
	Name  string
	Price decimal.Decimal
	Qty   int
}

// CheckoutRequest is the already-coerced checkout payload. A non-empty
// Cart selects the cart flow; otherwise the single-item fields apply.
type CheckoutRequest struct {
	Email     string
	Mobile    string
	Address   string
	Delivery  string
	OrderType string
	OrderDate string
	OrderTime string
	Cart      []LineItem
	Item      string
	Price     decimal.Decimal
	Qty       int
}

// Checkout creates one order row per cart line (or exactly one for the
// single-item flow) and sends the order summary to the operations mailbox
// and the customer. The checkout is complete once the rows are persisted;
// email failures never surface.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) ([]int64, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}

	orderType := order.OrderType(req.OrderType)
	if orderType == "" {
		orderType = order.TypeNow
	}
	// Schedule fields are honored only for pre-orders.
	var orderDate, orderTime *string
	if orderType == order.TypeLater {
		if req.OrderDate != "" {
			orderDate = &req.OrderDate
		}
		if req.OrderTime != "" {
			orderTime = &req.OrderTime
		}
	}

	var created []int64

	if len(req.Cart) > 0 {
		if req.Mobile == "" || req.Address == "" || req.Delivery == "" {
			return nil, ErrMissingFields
		}
		for _, line := range req.Cart {
			qty := line.Qty
			if qty < 1 {
				qty = 1
			}
			o := &order.Order{
				Item:      line.Name,
				Price:     line.Price,
				Qty:       qty,
				Email:     req.Email,
				Mobile:    req.Mobile,
				Address:   req.Address,
				Delivery:  req.Delivery,
				OrderType: orderType,
				OrderDate: orderDate,
				OrderTime: orderTime,
				Status:    order.StatusPending,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.repo.CreateOrder(ctx, o); err != nil {
				return nil, err
			}
			created = append(created, o.ID)
		}
	} else {
		if req.Item == "" || req.Mobile == "" || req.Address == "" || req.Delivery == "" {
			return nil, ErrMissingFields
		}
		qty := req.Qty
		if qty < 1 {
			qty = 1
		}
		o := &order.Order{
			Item:      req.Item,
			Price:     req.Price,
			Qty:       qty,
			Email:     req.Email,
			Mobile:    req.Mobile,
			Address:   req.Address,
			Delivery:  req.Delivery,
			OrderType: orderType,
			OrderDate: orderDate,
			OrderTime: orderTime,
			Status:    order.StatusPending,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.CreateOrder(ctx, o); err != nil {
			return nil, err
		}
		created = append(created, o.ID)
	}

	html := orderSummaryHTML(req)
	s.notifier.Dispatch(ctx, notify.Message{
		To:      []string{s.opsEmail},
		Subject: "New Order Received",
		HTML:    html,
	})
	s.notifier.Dispatch(ctx, notify.Message{
		To:      []string{req.Email},
		Subject: "Your Order Confirmation - Sushi Naruto",
		HTML:    html,
	})

	return created, nil
}

var customerActions = map[string]order.Status{
	"received": order.StatusDelivered,
	"out":      order.StatusOutForDelivery,
	"cancel":   order.StatusCancelled,
}

// CustomerAction applies a customer-initiated transition to a single
// order. Ownership is the matching email; a foreign order reads as not
// found so existence is never leaked.
func (s *Service) CustomerAction(ctx context.Context, email string, orderID int64, action string) (*order.Order, error) {
	status, ok := customerActions[action]
	if !ok {
		return nil, ErrInvalidAction
	}
	o, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if o.Email != email {
		return nil, ErrOrderNotFound
	}
	if o.Status.Terminal() {
		return nil, ErrOrderClosed
	}
	if err := s.repo.UpdateOrderStatus(ctx, o.ID, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

type staffAction struct {
	status  order.Status
	subject string
	message string
}

var staffActions = map[string]staffAction{
	"accept":    {order.StatusAccepted, "Order Accepted", "Good news! Your order has been accepted and will be prepared soon."},
	"making":    {order.StatusMaking, "Order Being Prepared", "Your order is currently being prepared by our chef."},
	"collect":   {order.StatusReadyToCollect, "Order Ready to Collect", "Please come to the restaurant to collect your order."},
	"delivered": {order.StatusDelivered, "Order Delivered", "Enjoy your meal! Thank you for choosing us."},
	"cancel":    {order.StatusCancelled, "Order Cancelled", "Your order has been cancelled."},
}

type StaffActionResult struct {
	Updated      int
	NewStatus    order.Status
	PendingCount int
}

// StaffAction transitions every resolvable, still-open order in ids and
// fans out one personalized notification per updated order. Unknown ids
// and already-closed orders are skipped, not errors; if nothing resolves
// at all the whole call fails with ErrOrderNotFound and no side effects.
func (s *Service) StaffAction(ctx context.Context, ids []int64, action, reason string) (*StaffActionResult, error) {
	act, ok := staffActions[action]
	if !ok {
		return nil, ErrInvalidAction
	}
	if len(ids) == 0 {
		return nil, ErrNoOrdersSelected
	}

	orders, err := s.repo.ListOrdersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	msg := act.message
	if action == "cancel" && reason != "" {
		msg = "Reason: " + reason
	}

	updated := 0
	for i := range orders {
		o := &orders[i]
		if o.Status.Terminal() {
			continue
		}
		if err := s.repo.UpdateOrderStatus(ctx, o.ID, act.status); err != nil {
			return nil, err
		}
		o.Status = act.status
		updated++

		s.notifier.Dispatch(ctx, notify.Message{
			To:      []string{o.Email},
			Subject: act.subject,
			HTML:    statusUpdateHTML(o, msg),
		})
	}

	pending, err := s.repo.CountOrdersByStatus(ctx, []order.Status{order.StatusAccepted, order.StatusMaking})
	if err != nil {
		return nil, err
	}

	return &StaffActionResult{Updated: updated, NewStatus: act.status, PendingCount: pending}, nil
}

// SetStatus sets an arbitrary valid status on one order and notifies the
// customer with a short status line.
func (s *Service) SetStatus(ctx context.Context, orderID int64, status order.Status) (*order.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	o, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if err := s.repo.UpdateOrderStatus(ctx, o.ID, status); err != nil {
		return nil, err
	}
	o.Status = status

	s.notifier.Dispatch(ctx, notify.Message{
		To:      []string{o.Email},
		Subject: "Order Status Update",
		HTML:    statusUpdateHTML(o, "Your order is now "+status.Display()+"."),
	})
	return o, nil
}

func (s *Service) Delete(ctx context.Context, orderID int64) error {
	if _, err := s.repo.FindOrderByID(ctx, orderID); err != nil {
		return ErrOrderNotFound
	}
	return s.repo.DeleteOrder(ctx, orderID)
}

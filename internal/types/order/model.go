package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusMaking         Status = "making"
	StatusReadyToCollect Status = "ready_to_collect"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// Steps is the happy-path lifecycle shown on the customer tracking card.
var Steps = []Status{StatusPending, StatusAccepted, StatusMaking, StatusReadyToCollect, StatusDelivered}

var displayNames = map[Status]string{
	StatusPending:        "Pending",
	StatusAccepted:       "Accepted",
	StatusMaking:         "Making",
	StatusReadyToCollect: "Ready to Collect",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusCancelled:      "Cancelled",
}

func (s Status) Display() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return string(s)
}

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) Valid() bool {
	_, ok := displayNames[s]
	return ok
}

type OrderType string

const (
	TypeNow   OrderType = "now"
	TypeLater OrderType = "later"
)

type Order struct {
	ID        int64           `db:"id" json:"id"`
	Item      string          `db:"item" json:"item"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Qty       int             `db:"qty" json:"qty"`
	Email     string          `db:"email" json:"email"`
	Mobile    string          `db:"mobile" json:"mobile"`
	Address   string          `db:"address" json:"address"`
	Delivery  string          `db:"delivery" json:"delivery"`
	OrderType OrderType       `db:"order_type" json:"order_type"`
	OrderDate *string         `db:"order_date" json:"order_date,omitempty"`
	OrderTime *string         `db:"order_time" json:"order_time,omitempty"`
	Status    Status          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// TotalPrice is derived, never stored.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Qty)))
}

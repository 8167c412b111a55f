package order

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/types/order"
)

// orderSummaryHTML renders the itemized checkout summary sent to both the
// operations mailbox and the customer.
func orderSummaryHTML(req CheckoutRequest) string {
	var lines strings.Builder
	total := decimal.Zero

	if len(req.Cart) > 0 {
		for _, line := range req.Cart {
			qty := line.Qty
			if qty < 1 {
				qty = 1
			}
			sub := line.Price.Mul(decimal.NewFromInt(int64(qty)))
			total = total.Add(sub)
			fmt.Fprintf(&lines, "- %s (x%d) : %s CHF\n", html.EscapeString(line.Name), qty, sub.StringFixed(2))
		}
	} else {
		qty := req.Qty
		if qty < 1 {
			qty = 1
		}
		sub := req.Price.Mul(decimal.NewFromInt(int64(qty)))
		total = sub
		fmt.Fprintf(&lines, "- %s (x%d) : %s CHF\n", html.EscapeString(req.Item), qty, sub.StringFixed(2))
	}

	scheduled := ""
	if req.OrderType == string(order.TypeLater) {
		scheduled = fmt.Sprintf("<p><strong>Scheduled:</strong> %s at %s</p>",
			html.EscapeString(req.OrderDate), html.EscapeString(req.OrderTime))
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial; padding:20px; background:#f4f4f4;">
  <div style="max-width:600px; margin:auto; background:white; padding:20px; border-radius:8px;">
    <h2 style="text-align:center;">New Order Received</h2>
    <h3>Customer Details</h3>
    <div style="background:#f9f9f9; padding:10px; border-radius:6px;">
      <p><strong>Email:</strong> %s</p>
      <p><strong>Mobile:</strong> %s</p>
      <p><strong>Address:</strong> %s</p>
    </div>
    <h3 style="margin-top:20px;">Order Details</h3>
    <div style="background:#f9f9f9; padding:10px; border-radius:6px; white-space:pre-line;">%s</div>
    <p><strong>Total Price: %s CHF</strong></p>
    <h3>Delivery Information</h3>
    <div style="background:#f9f9f9; padding:10px; border-radius:6px;">
      <p><strong>Delivery Method:</strong> %s</p>
      <p><strong>Order Type:</strong> %s</p>
    </div>
    %s
  </div>
</body>
</html>`,
		html.EscapeString(req.Email),
		html.EscapeString(req.Mobile),
		html.EscapeString(req.Address),
		lines.String(),
		total.StringFixed(2),
		html.EscapeString(req.Delivery),
		html.EscapeString(req.OrderType),
		scheduled,
	)
}

// statusUpdateHTML renders the personalized status-change email for a
// single order.
func statusUpdateHTML(o *order.Order, message string) string {
	details := fmt.Sprintf(`<p><strong>Order ID:</strong> #%d</p>
<p><strong>Item:</strong> %s</p>
<p><strong>Quantity:</strong> %d</p>
<p><strong>Price per item:</strong> %s CHF</p>
<p><strong>Total Price:</strong> %s CHF</p>
<p><strong>Delivery:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Mobile:</strong> %s</p>`,
		o.ID,
		html.EscapeString(o.Item),
		o.Qty,
		o.Price.StringFixed(2),
		o.TotalPrice().StringFixed(2),
		html.EscapeString(o.Delivery),
		html.EscapeString(o.Address),
		html.EscapeString(o.Mobile),
	)

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; background: #f8f8f8;">
  <div style="background: white; padding: 20px; border-radius: 10px; max-width: 600px; margin: auto;">
    <h2 style="color: #d81b60; text-align:center;">Order Status Update</h2>
    <p>%s</p>
    <h3 style="margin-top: 20px;">Order Details</h3>
    <div style="border: 1px solid #ddd; padding: 15px; border-radius: 6px; background:#fafafa;">%s</div>
    <p style="margin-top: 25px;">Thank you for ordering with <strong>Sushi Naruto Momos</strong>.</p>
  </div>
</div>`,
		html.EscapeString(message),
		details,
	)
}

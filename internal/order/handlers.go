package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sushinaruto/backend/internal/middleware"
	"github.com/sushinaruto/backend/internal/types/order"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type cartLine struct {
	Name  string `json:"name"`
	Item  string `json:"item"`
	Price any    `json:"price"`
	Qty   any    `json:"qty"`
}

type checkoutPayload struct {
	Email     string     `json:"email"`
	Mobile    string     `json:"mobile"`
	Address   string     `json:"address"`
	Delivery  string     `json:"delivery"`
	OrderType string     `json:"orderType"`
	OrderDate string     `json:"orderDate"`
	OrderTime string     `json:"orderTime"`
	Cart      []cartLine `json:"cart"`
	Item      string     `json:"item"`
	Price     any        `json:"price"`
	Qty       any        `json:"qty"`
}

// toPrice coerces a price of any payload shape. Non-numeric values fall
// back to zero; a bad price never fails a checkout.
func toPrice(v any) decimal.Decimal {
	switch p := v.(type) {
	case float64:
		return decimal.NewFromFloat(p)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// toQty coerces a quantity, falling back to 1.
func toQty(v any) int {
	switch q := v.(type) {
	case float64:
		if q >= 1 {
			return int(q)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}

// parseCheckout accepts either a JSON body or a form-encoded one.
func parseCheckout(r *http.Request) (CheckoutRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return CheckoutRequest{}, err
	}

	var p checkoutPayload
	if jsonErr := json.Unmarshal(body, &p); jsonErr != nil {
		form, formErr := url.ParseQuery(string(body))
		if formErr != nil {
			return CheckoutRequest{}, formErr
		}
		p = checkoutPayload{
			Email:     form.Get("email"),
			Mobile:    form.Get("mobile"),
			Address:   form.Get("address"),
			Delivery:  form.Get("delivery"),
			OrderType: form.Get("orderType"),
			OrderDate: form.Get("orderDate"),
			OrderTime: form.Get("orderTime"),
			Item:      form.Get("item"),
			Price:     form.Get("price"),
			Qty:       form.Get("qty"),
		}
	}

	req := CheckoutRequest{
		Email:     p.Email,
		Mobile:    p.Mobile,
		Address:   p.Address,
		Delivery:  p.Delivery,
		OrderType: p.OrderType,
		OrderDate: p.OrderDate,
		OrderTime: p.OrderTime,
		Item:      p.Item,
		Price:     toPrice(p.Price),
		Qty:       toQty(p.Qty),
	}
	for _, line := range p.Cart {
		name := line.Name
		if name == "" {
			name = line.Item
		}
		req.Cart = append(req.Cart, LineItem{Name: name, Price: toPrice(line.Price), Qty: toQty(line.Qty)})
	}
	return req, nil
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, map[string]any{"success": false, "error": msg})
}

// wantsJSON reports whether the caller is a machine client rather than a
// browser following a form post.
func wantsJSON(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, flash string) {
	http.Redirect(w, r, path+"?flash="+url.QueryEscape(flash), http.StatusSeeOther)
}

// Submit handles checkout for both guests and signed-in customers.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := parseCheckout(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ids, err := h.svc.Checkout(r.Context(), req)
	switch {
	case errors.Is(err, ErrEmailRequired):
		respondError(w, http.StatusBadRequest, "Email required")
	case errors.Is(err, ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "could not create order")
	default:
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "order_ids": ids})
	}
}

// CustomerAction lets a customer act on one of their own orders.
func (h *Handler) CustomerAction(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var action string
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var p struct {
			Action string `json:"action"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		action = p.Action
	} else {
		action = r.PostFormValue("action")
	}

	o, err := h.svc.CustomerAction(r.Context(), u.Email, orderID, action)
	switch {
	case errors.Is(err, ErrInvalidAction):
		respondError(w, http.StatusBadRequest, "invalid action")
	case errors.Is(err, ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, ErrOrderClosed):
		respondError(w, http.StatusConflict, "order already delivered or cancelled")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "could not update order")
	default:
		if wantsJSON(r) {
			respondJSON(w, http.StatusOK, map[string]any{"success": true, "status": o.Status})
			return
		}
		redirectWithFlash(w, r, "/order/history", "Order updated")
	}
}

type staffActionPayload struct {
	Action   string  `json:"action"`
	Reason   string  `json:"reason"`
	OrderIDs []int64 `json:"order_ids"`
}

// StaffAction applies a transition to one order (id in the route) or a
// bulk selection (order_ids in the body).
func (h *Handler) StaffAction(w http.ResponseWriter, r *http.Request) {
	var p staffActionPayload
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		p.Action = r.PostFormValue("action")
		p.Reason = r.PostFormValue("reason")
		for _, raw := range r.PostForm["order_ids"] {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				p.OrderIDs = append(p.OrderIDs, id)
			}
		}
	}

	if len(p.OrderIDs) == 0 {
		if raw := chi.URLParam(r, "id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				p.OrderIDs = []int64{id}
			}
		}
	}

	res, err := h.svc.StaffAction(r.Context(), p.OrderIDs, p.Action, p.Reason)
	switch {
	case errors.Is(err, ErrInvalidAction):
		h.staffActionFail(w, r, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, ErrNoOrdersSelected):
		h.staffActionFail(w, r, http.StatusBadRequest, "No orders selected")
	case errors.Is(err, ErrOrderNotFound):
		h.staffActionFail(w, r, http.StatusNotFound, "Orders not found")
	case err != nil:
		h.staffActionFail(w, r, http.StatusInternalServerError, "Server error")
	default:
		msg := fmt.Sprintf("%d order(s) updated to %s", res.Updated, res.NewStatus.Display())
		if wantsJSON(r) {
			respondJSON(w, http.StatusOK, map[string]any{
				"success":       true,
				"message":       msg,
				"new_status":    res.NewStatus,
				"updated":       res.Updated,
				"pending_count": res.PendingCount,
			})
			return
		}
		redirectWithFlash(w, r, "/order/food_table", msg)
	}
}

func (h *Handler) staffActionFail(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if wantsJSON(r) {
		respondJSON(w, code, map[string]any{"success": false, "message": msg})
		return
	}
	redirectWithFlash(w, r, "/order/food_table", msg)
}

// SetStatus sets an explicit status on one order.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	status := order.Status(r.PostFormValue("status"))

	o, err := h.svc.SetStatus(r.Context(), orderID, status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid status")
	case errors.Is(err, ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order not found")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "could not update order")
	default:
		if wantsJSON(r) {
			respondJSON(w, http.StatusOK, map[string]any{"success": true, "status": o.Status})
			return
		}
		redirectWithFlash(w, r, "/order/manage_history", fmt.Sprintf("Order #%d updated to %s", o.ID, o.Status.Display()))
	}
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	orders, err := h.svc.History(r.Context(), u.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) LiveTrack(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	orders, err := h.svc.LiveTrack(r.Context(), u.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	detail, err := h.svc.Detail(r.Context(), u.Email, u.IsStaff(), orderID)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order not found")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "could not load order")
	default:
		respondJSON(w, http.StatusOK, detail)
	}
}

func (h *Handler) LiveBoard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.LiveBoard(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": entries})
}

func (h *Handler) FoodTable(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.FoodTable(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) ManageHistory(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	date := r.URL.Query().Get("date")
	orders, statuses, err := h.svc.ManageHistory(r.Context(), status, date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"orders":       orders,
		"all_statuses": statuses,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	err = h.svc.Delete(r.Context(), orderID)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order not found")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "could not delete order")
	default:
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

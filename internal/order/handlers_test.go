package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/sushinaruto/backend/internal/middleware"
	"github.com/sushinaruto/backend/internal/types/order"
	"github.com/sushinaruto/backend/internal/types/user"
)

func setupHandler(repo *mockRepo) (*Handler, *mockNotifier) {
	svc, n := newTestService(repo)
	return NewHandler(svc), n
}

func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSubmitJSONCart(t *testing.T) {
	var created []order.Order
	repo := &mockRepo{
		createOrderFn: func(ctx context.Context, o *order.Order) error {
			o.ID = int64(len(created) + 1)
			created = append(created, *o)
			return nil
		},
	}
	handler, _ := setupHandler(repo)

	body := `{
        "email": "alice@example.com",
        "mobile": "0791234567",
        "address": "Bahnhofstrasse 1",
        "delivery": "delivery",
        "cart": [
            {"name": "Salmon Roll", "price": "12.50", "qty": 2},
            {"name": "Miso Soup", "price": 4.0, "qty": "1"}
        ]
    }`
	req := httptest.NewRequest(http.MethodPost, "/api/order/submit", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success  bool    `json:"success"`
		OrderIDs []int64 `json:"order_ids"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, []int64{1, 2}, out.OrderIDs)

	assert.Equal(t, "12.5", created[0].Price.String())
	assert.Equal(t, 2, created[0].Qty)
	assert.Equal(t, "4", created[1].Price.String())
	assert.Equal(t, 1, created[1].Qty)
}

func TestSubmitFormSingleItemCoercion(t *testing.T) {
	var created []order.Order
	repo := &mockRepo{
		createOrderFn: func(ctx context.Context, o *order.Order) error {
			o.ID = 1
			created = append(created, *o)
			return nil
		},
	}
	handler, _ := setupHandler(repo)

	body := "email=bob%40example.com&mobile=0790000000&address=Somewhere+2&delivery=pickup&item=Tuna+Nigiri&price=not-a-number&qty=abc"
	req := httptest.NewRequest(http.MethodPost, "/api/order/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, created, 1)
	assert.True(t, created[0].Price.IsZero())
	assert.Equal(t, 1, created[0].Qty)
}

func TestSubmitMissingEmail(t *testing.T) {
	repo := &mockRepo{
		createOrderFn: func(ctx context.Context, o *order.Order) error {
			t.Fatal("no order may be created")
			return nil
		},
	}
	handler, _ := setupHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/order/submit", strings.NewReader(`{"item":"Miso Soup"}`))
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaffActionRouteIDFallback(t *testing.T) {
	repo := &mockRepo{
		listOrdersByIDsFn: func(ctx context.Context, ids []int64) ([]order.Order, error) {
			assert.Equal(t, []int64{5}, ids)
			return []order.Order{{ID: 5, Email: "a@example.com", Status: order.StatusPending}}, nil
		},
		updateOrderStatusFn: func(ctx context.Context, id int64, status order.Status) error {
			return nil
		},
		countOrdersByStatusFn: func(ctx context.Context, statuses []order.Status) (int, error) {
			return 1, nil
		},
	}
	handler, _ := setupHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/order/admin/action/5", strings.NewReader(`{"action":"accept"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req = withRouteID(req, "5")

	w := httptest.NewRecorder()
	handler.StaffAction(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Success      bool   `json:"success"`
		NewStatus    string `json:"new_status"`
		Updated      int    `json:"updated"`
		PendingCount int    `json:"pending_count"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "accepted", out.NewStatus)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, 1, out.PendingCount)
}

func TestStaffActionBrowserRedirect(t *testing.T) {
	repo := &mockRepo{
		listOrdersByIDsFn: func(ctx context.Context, ids []int64) ([]order.Order, error) {
			return []order.Order{{ID: 5, Email: "a@example.com", Status: order.StatusPending}}, nil
		},
		updateOrderStatusFn: func(ctx context.Context, id int64, status order.Status) error {
			return nil
		},
		countOrdersByStatusFn: func(ctx context.Context, statuses []order.Status) (int, error) {
			return 0, nil
		},
	}
	handler, _ := setupHandler(repo)

	body := "action=accept&order_ids=5"
	req := httptest.NewRequest(http.MethodPost, "/api/order/admin/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler.StaffAction(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "flash=")
}

func TestCustomerActionJSONBody(t *testing.T) {
	var gotStatus order.Status
	repo := &mockRepo{
		findOrderByIDFn: func(ctx context.Context, id int64) (*order.Order, error) {
			return &order.Order{ID: id, Email: "alice@example.com", Status: order.StatusOutForDelivery}, nil
		},
		updateOrderStatusFn: func(ctx context.Context, id int64, status order.Status) error {
			gotStatus = status
			return nil
		},
	}
	handler, _ := setupHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/order/7/action", strings.NewReader(`{"action":"received"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req = withRouteID(req, "7")
	req = req.WithContext(middleware.ContextWithUser(req.Context(), &user.User{Email: "alice@example.com"}))

	w := httptest.NewRecorder()
	handler.CustomerAction(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.StatusDelivered, gotStatus)
}

func TestCustomerActionClosedOrderConflicts(t *testing.T) {
	repo := &mockRepo{
		findOrderByIDFn: func(ctx context.Context, id int64) (*order.Order, error) {
			return &order.Order{ID: id, Email: "alice@example.com", Status: order.StatusCancelled}, nil
		},
	}
	handler, _ := setupHandler(repo)

	body := "action=cancel"
	req := httptest.NewRequest(http.MethodPost, "/api/order/7/action", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withRouteID(req, "7")
	req = req.WithContext(middleware.ContextWithUser(req.Context(), &user.User{Email: "alice@example.com"}))

	w := httptest.NewRecorder()
	handler.CustomerAction(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

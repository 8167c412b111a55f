package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSender struct {
	sent []Message
	err  error
}

func (s *stubSender) Send(ctx context.Context, msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestDispatchDelivers(t *testing.T) {
	sender := &stubSender{}
	d := NewDispatcher(sender, zap.NewNop())

	d.Dispatch(context.Background(), Message{
		To:      []string{"alice@example.com"},
		Subject: "Order Accepted",
		HTML:    "<p>hi</p>",
	})

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "Order Accepted", sender.sent[0].Subject)
}

func TestDispatchSwallowsSendErrors(t *testing.T) {
	sender := &stubSender{err: errors.New("provider down")}
	d := NewDispatcher(sender, zap.NewNop())

	// Must not panic or surface the failure.
	d.Dispatch(context.Background(), Message{
		To:      []string{"alice@example.com"},
		Subject: "Order Accepted",
	})

	assert.Empty(t, sender.sent)
}

func TestBrevoClientSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := &BrevoClient{
		Client:      srv.Client(),
		APIKey:      "test-key",
		SenderName:  "Sushi Naruto",
		SenderEmail: "no-reply@sushinaruto.ch",
		BaseURL:     srv.URL,
	}

	err := c.Send(context.Background(), Message{
		To:      []string{"alice@example.com"},
		Subject: "Your Order Confirmation - Sushi Naruto",
		HTML:    "<p>thanks</p>",
	})
	assert.NoError(t, err)

	sender := got["sender"].(map[string]any)
	assert.Equal(t, "no-reply@sushinaruto.ch", sender["email"])
	assert.Equal(t, "Your Order Confirmation - Sushi Naruto", got["subject"])
}

func TestBrevoClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := &BrevoClient{
		Client:  srv.Client(),
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}

	err := c.Send(context.Background(), Message{To: []string{"alice@example.com"}})
	assert.Error(t, err)
}

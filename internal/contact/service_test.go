package contact

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/types/contact"
)

type mockRepo struct {
	createFn   func(ctx context.Context, c *contact.Contact) error
	findByIDFn func(ctx context.Context, id int64) (*contact.Contact, error)
	listFn     func(ctx context.Context) ([]contact.Contact, error)
	recentFn   func(ctx context.Context, limit int) ([]contact.Contact, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockRepo) CreateContact(ctx context.Context, c *contact.Contact) error {
	return m.createFn(ctx, c)
}
func (m *mockRepo) FindContactByID(ctx context.Context, id int64) (*contact.Contact, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRepo) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	return m.listFn(ctx)
}
func (m *mockRepo) RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockRepo) DeleteContact(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockNotifier struct {
	sent []notify.Message
}

func (m *mockNotifier) Dispatch(ctx context.Context, msg notify.Message) {
	m.sent = append(m.sent, msg)
}

func TestSubmitStoresAndNotifiesOps(t *testing.T) {
	var created *contact.Contact
	repo := &mockRepo{
		createFn: func(ctx context.Context, c *contact.Contact) error {
			c.ID = 1
			created = c
			return nil
		},
	}
	n := &mockNotifier{}
	svc := NewService(repo, n, "ops@sushinaruto.ch")

	c, err := svc.Submit(context.Background(), "Alice", "alice@example.com", "Do you deliver to Bern?")
	assert.NoError(t, err)
	assert.Equal(t, contact.StatusNew, c.Status)
	assert.Same(t, created, c)
	assert.Len(t, n.sent, 1)
	assert.Equal(t, []string{"ops@sushinaruto.ch"}, n.sent[0].To)
	assert.Equal(t, "New message from Alice", n.sent[0].Subject)
}

func TestSubmitAnonymousName(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, c *contact.Contact) error { return nil },
	}
	svc := NewService(repo, &mockNotifier{}, "ops@sushinaruto.ch")

	c, err := svc.Submit(context.Background(), "", "alice@example.com", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "Anonymous", c.Name)
}

func TestSubmitRequiresEmail(t *testing.T) {
	repo := &mockRepo{
		createFn: func(ctx context.Context, c *contact.Contact) error {
			t.Fatal("nothing may be stored")
			return nil
		},
	}
	n := &mockNotifier{}
	svc := NewService(repo, n, "ops@sushinaruto.ch")

	_, err := svc.Submit(context.Background(), "Alice", "", "hello")
	assert.Equal(t, ErrEmailRequired, err)
	assert.Empty(t, n.sent)
}

func TestGetMissingContact(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id int64) (*contact.Contact, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := NewService(repo, &mockNotifier{}, "ops@sushinaruto.ch")

	_, err := svc.Get(context.Background(), 404)
	assert.Equal(t, ErrContactNotFound, err)
}

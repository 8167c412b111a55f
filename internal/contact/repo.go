package contact

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/contact"
)

type ContactRepository interface {
	CreateContact(ctx context.Context, c *contact.Contact) error
	FindContactByID(ctx context.Context, id int64) (*contact.Contact, error)
	ListContacts(ctx context.Context) ([]contact.Contact, error)
	RecentContacts(ctx context.Context, limit int) ([]contact.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

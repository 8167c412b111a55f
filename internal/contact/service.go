package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/types/contact"
)

var (
	ErrEmailRequired   = errors.New("email required")
	ErrContactNotFound = errors.New("contact message not found")
)

type Notifier interface {
	Dispatch(ctx context.Context, msg notify.Message)
}

type Service struct {
	repo     ContactRepository
	notifier Notifier
	opsEmail string
}

func NewService(repo ContactRepository, notifier Notifier, opsEmail string) *Service {
	return &Service{repo: repo, notifier: notifier, opsEmail: opsEmail}
}

// Submit stores the message and notifies the operations mailbox. The
// message counts as received once stored; a failed notification email
// does not fail the submission.
func (s *Service) Submit(ctx context.Context, name, email, message string) (*contact.Contact, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if name == "" {
		name = "Anonymous"
	}
	c := &contact.Contact{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    contact.StatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		return nil, err
	}

	s.notifier.Dispatch(ctx, notify.Message{
		To:      []string{s.opsEmail},
		Subject: fmt.Sprintf("New message from %s", name),
		HTML: fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(name), html.EscapeString(email), html.EscapeString(message)),
	})
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]contact.Contact, error) {
	return s.repo.ListContacts(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*contact.Contact, error) {
	c, err := s.repo.FindContactByID(ctx, id)
	if err != nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindContactByID(ctx, id); err != nil {
		return ErrContactNotFound
	}
	return s.repo.DeleteContact(ctx, id)
}

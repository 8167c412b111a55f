package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Message is a single transactional email. It is never persisted: a
// message either goes out now or is lost.
type Message struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher delivers messages best-effort. Delivery failures are logged
// and swallowed so that a mail-provider outage can never fail the request
// that triggered the notification.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: log}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	id := uuid.NewString()
	if err := d.sender.Send(ctx, msg); err != nil {
		d.log.Error("email delivery failed",
			zap.String("message_id", id),
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return
	}
	d.log.Info("email sent",
		zap.String("message_id", id),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
}

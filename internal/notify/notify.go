// Package notify delivers contact-form messages to whoever handles them.
// Nothing is wired by default: the page works with Noop and no network traffic.
package notify

import (
	"context"
	"log/slog"

	"triptogether/internal/logger"
	"triptogether/internal/model"
)

// Forwarder hands a contact message to an external collaborator.
type Forwarder interface {
	Forward(ctx context.Context, msg model.ContactMessage) error
	// Name identifies the forwarder in logs and receipts.
	Name() string
}

// Noop records the submission in the log and goes nowhere else.
type Noop struct {
	log *slog.Logger
}

// NewNoop returns a forwarder that only logs.
func NewNoop(log *slog.Logger) *Noop {
	return &Noop{log: log.With(logger.Scope("notify.noop"))}
}

func (n *Noop) Forward(ctx context.Context, msg model.ContactMessage) error {
	n.log.InfoContext(ctx, "contact message received",
		slog.String("locale", msg.Locale),
		slog.Int("message_len", len(msg.Message)))
	return nil
}

func (n *Noop) Name() string { return "noop" }

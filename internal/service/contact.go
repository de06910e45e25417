package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"triptogether/internal/logger"
	"triptogether/internal/model"
	"triptogether/internal/notify"
)

// ContactService defines the use case behind the contact form.
type ContactService interface {
	// Submit accepts a message. It never fails on the visitor's behalf: forwarding
	// problems are logged and the receipt reports Forwarded=false.
	Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactReceipt, error)
}

type contactService struct {
	fwd notify.Forwarder
	log *slog.Logger
	now func() time.Time
}

// NewContactService constructs a ContactService. A nil forwarder means notify.Noop.
func NewContactService(fwd notify.Forwarder, log *slog.Logger) ContactService {
	if fwd == nil {
		fwd = notify.NewNoop(log)
	}
	return &contactService{
		fwd: fwd,
		log: log.With(logger.Scope("service.contact")),
		now: time.Now,
	}
}

func (s *contactService) Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactReceipt, error) {
	ctx, span := otel.Tracer("triptogether/service").Start(ctx, "contact.submit")
	defer span.End()

	msg = normalize(msg)
	span.SetAttributes(
		attribute.String("contact.forwarder", s.fwd.Name()),
		attribute.String("contact.locale", msg.Locale),
	)

	receipt := &model.ContactReceipt{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
	}

	if err := s.fwd.Forward(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "forward failed")
		s.log.WarnContext(ctx, "contact message not forwarded",
			slog.String("receipt_id", receipt.ID),
			slog.String("forwarder", s.fwd.Name()),
			logger.Error(err))
		return receipt, nil
	}

	_, noop := s.fwd.(*notify.Noop)
	receipt.Forwarded = !noop
	return receipt, nil
}

func normalize(msg model.ContactMessage) model.ContactMessage {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Locale = strings.TrimSpace(msg.Locale)
	return msg
}

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"triptogether/internal/config"
	"triptogether/internal/logger"
	"triptogether/internal/model"
)

const sendTimeout = 30 * time.Second

// Mailgun forwards contact messages to the agency inbox.
// This is a thin wrapper around the Mailgun SDK.
type Mailgun struct {
	cfg    config.MailConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgun returns nil when Mailgun is not configured.
func NewMailgun(cfg config.MailConfig, log *slog.Logger) *Mailgun {
	if !cfg.Enabled() {
		return nil
	}

	client := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}
	client.SetClient(&http.Client{
		Timeout:   sendTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	return &Mailgun{
		cfg:    cfg,
		log:    log.With(logger.Scope("notify.mailgun")),
		client: client,
	}
}

func (m *Mailgun) Name() string { return "mailgun" }

// Forward sends msg to the configured inbox with Reply-To set to the visitor.
func (m *Mailgun) Forward(ctx context.Context, msg model.ContactMessage) error {
	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	message := m.client.NewMessage(from, Subject(msg), Body(msg), m.cfg.Inbox)
	if msg.Email != "" {
		message.SetReplyTo(msg.Email)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := m.client.Send(sendCtx, message)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to forward contact message", logger.Error(err))
		return fmt.Errorf("mailgun send: %w", err)
	}

	m.log.InfoContext(ctx, "contact message forwarded", slog.String("message_id", id))
	return nil
}

// Subject builds the e-mail subject for a contact message.
func Subject(msg model.ContactMessage) string {
	name := msg.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("[Trip Together] Question from %s", name)
}

// Body renders a plain-text e-mail body.
func Body(msg model.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	if msg.Locale != "" {
		fmt.Fprintf(&b, "Locale: %s\n", msg.Locale)
	}
	b.WriteString("\n")
	b.WriteString(msg.Message)
	b.WriteString("\n")
	return b.String()
}

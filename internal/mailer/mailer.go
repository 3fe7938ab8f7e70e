// Package mailer sends outbound notification mail, such as the temporary
// password message produced by the forgot-password flow.
package mailer

import (
	"context"
	"fmt"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/wneessen/go-mail"
)

// Mailer delivers a plain-text message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer is the production [Mailer] backed by an SMTP server.
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPMailer constructs an [SMTPMailer] from the mail configuration.
// Authentication is enabled only when a username is configured, so local
// development against an unauthenticated relay works out of the box.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewSMTPMailer").Msg("error creating smtp client")
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
		logger: log,
	}, nil
}

// Send delivers a plain-text message to the given recipient.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx)

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("error setting mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("error setting mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*SMTPMailer.Send").Msg("error sending mail")
		return fmt.Errorf("error sending mail: %w", err)
	}

	log.Info().Str("func", "*SMTPMailer.Send").Str("subject", subject).Msg("mail sent")
	return nil
}

// NopMailer discards every message. Used in tests and in deployments where
// no SMTP relay is configured.
type NopMailer struct{}

func (NopMailer) Send(ctx context.Context, to, subject, body string) error {
	return nil
}

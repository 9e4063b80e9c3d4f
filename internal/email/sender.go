package email

import (
	"context"

	"careportal_backend/platform/config"
)

// Sender delivers transactional emails for the booking lifecycle.
type Sender interface {
	SendBookingConfirmationEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime string) error
	SendCancellationEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime, reason string) error
	SendReminderEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime string) error
}

// NewSender returns the configured Sender: SMTP when email is enabled,
// otherwise a no-op.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

// NoopSender is used when email delivery is disabled. It logs nothing and
// accepts everything.
type NoopSender struct{}

func (NoopSender) SendBookingConfirmationEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime string) error {
	return nil
}

func (NoopSender) SendCancellationEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime, reason string) error {
	return nil
}

func (NoopSender) SendReminderEmail(ctx context.Context, toEmail, clientName, serviceName, date, startTime string) error {
	return nil
}

var _ Sender = NoopSender{}

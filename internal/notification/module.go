// Package notification sends transactional emails in response to domain
// events. Booking modules publish events and stay unaware of email
// providers or templates.
package notification

import (
	"context"
	"fmt"
	"strings"

	"careportal_backend/internal/email"
	"careportal_backend/internal/events"
	"careportal_backend/platform/logger"
)

const cancellationReasonPrefix = "Cancellation reason: "

// Module wires domain events to the email sender.
type Module struct {
	log    *logger.Logger
	sender email.Sender
}

// NewModule creates the notification module.
func NewModule(log *logger.Logger, sender email.Sender) *Module {
	return &Module{log: log, sender: sender}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.AppointmentBooked{}.EventName(), m)
	bus.Subscribe(events.AppointmentStatusChanged{}.EventName(), m)
	bus.Subscribe(events.AppointmentReminderDue{}.EventName(), m)
	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.AppointmentBooked:
		return m.handleAppointmentBooked(ctx, e)
	case events.AppointmentStatusChanged:
		return m.handleAppointmentStatusChanged(ctx, e)
	case events.AppointmentReminderDue:
		return m.handleAppointmentReminderDue(ctx, e)
	default:
		m.log.Warn("notification module received unknown event", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleAppointmentBooked(ctx context.Context, e events.AppointmentBooked) error {
	if e.ClientEmail == "" {
		return nil
	}
	if err := m.sender.SendBookingConfirmationEmail(ctx, e.ClientEmail, e.ClientName, e.ServiceName, e.Date, e.StartTime); err != nil {
		return fmt.Errorf("send booking confirmation for appointment %s: %w", e.AppointmentID, err)
	}
	m.log.BookingEvent("booking confirmation email sent", e.AppointmentID.String(), e.PartnerID.String())
	return nil
}

func (m *Module) handleAppointmentStatusChanged(ctx context.Context, e events.AppointmentStatusChanged) error {
	// Only cancellations notify the client. Other transitions are internal
	// workflow steps.
	if e.ToStatus != "cancelled" || e.ClientEmail == "" {
		return nil
	}
	reason := strings.TrimPrefix(e.Notes, cancellationReasonPrefix)
	if err := m.sender.SendCancellationEmail(ctx, e.ClientEmail, e.ClientName, e.ServiceName, e.Date, e.StartTime, reason); err != nil {
		return fmt.Errorf("send cancellation email for appointment %s: %w", e.AppointmentID, err)
	}
	m.log.BookingEvent("cancellation email sent", e.AppointmentID.String(), e.PartnerID.String())
	return nil
}

func (m *Module) handleAppointmentReminderDue(ctx context.Context, e events.AppointmentReminderDue) error {
	if e.ClientEmail == "" {
		return nil
	}
	if err := m.sender.SendReminderEmail(ctx, e.ClientEmail, e.ClientName, e.ServiceName, e.Date, e.StartTime); err != nil {
		return fmt.Errorf("send reminder email for appointment %s: %w", e.AppointmentID, err)
	}
	m.log.BookingEvent("reminder email sent", e.AppointmentID.String(), e.PartnerID.String())
	return nil
}

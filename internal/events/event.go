// Package events defines the domain events modules publish and subscribe
// to. Infrastructure (Bus, Handler) lives in platform/events.
package events

import (
	"careportal_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience.
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions.
var NewBaseEvent = events.NewBaseEvent

// AppointmentBooked is published when a client books an appointment through
// the public booking flow.
type AppointmentBooked struct {
	BaseEvent
	AppointmentID uuid.UUID `json:"appointmentId"`
	PartnerID     uuid.UUID `json:"partnerId"`
	ServiceName   string    `json:"serviceName"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
}

func (e AppointmentBooked) EventName() string { return "appointments.booked" }

// AppointmentStatusChanged is published on every appointment status
// transition, including cancellations.
type AppointmentStatusChanged struct {
	BaseEvent
	AppointmentID uuid.UUID `json:"appointmentId"`
	PartnerID     uuid.UUID `json:"partnerId"`
	ServiceName   string    `json:"serviceName"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	FromStatus    string    `json:"fromStatus"`
	ToStatus      string    `json:"toStatus"`
	Notes         string    `json:"notes,omitempty"`
}

func (e AppointmentStatusChanged) EventName() string { return "appointments.status_changed" }

// AppointmentReminderDue is published by the scheduler worker when an
// appointment's reminder time is reached.
type AppointmentReminderDue struct {
	BaseEvent
	AppointmentID uuid.UUID `json:"appointmentId"`
	PartnerID     uuid.UUID `json:"partnerId"`
	ServiceName   string    `json:"serviceName"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
}

func (e AppointmentReminderDue) EventName() string { return "appointments.reminder_due" }

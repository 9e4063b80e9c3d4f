package transport

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus defines the lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// AppointmentView selects the date window for listing appointments.
type AppointmentView string

const (
	ViewToday AppointmentView = "today"
	ViewWeek  AppointmentView = "week"
	ViewMonth AppointmentView = "month"
	ViewAll   AppointmentView = "all"
)

// ListAppointmentsRequest is the query for listing appointments.
type ListAppointmentsRequest struct {
	View      AppointmentView   `form:"range" validate:"omitempty,oneof=today week month all"`
	Status    AppointmentStatus `form:"status" validate:"omitempty,oneof=all scheduled confirmed completed cancelled no-show"`
	Search    string            `form:"search" validate:"omitempty,max=200"`
	ServiceID string            `form:"serviceId" validate:"omitempty,uuid"`
}

// UpdateAppointmentStatusRequest is the request body for a status transition.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled no-show"`
	Notes  *string           `json:"notes" validate:"omitempty,max=500"`
}

// CancelAppointmentRequest is the request body for cancelling an
// appointment. The reason is optional; when present it is recorded in the
// appointment notes.
type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// BookAppointmentRequest carries a validated booking into the appointments
// service. The public booking module builds this after form validation.
type BookAppointmentRequest struct {
	PartnerID       uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
	PriceCents      int64
	Notes           string
}

// AppointmentResponse is the response body for a single appointment.
type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	PartnerID       uuid.UUID         `json:"partnerId"`
	ServiceID       uuid.UUID         `json:"serviceId"`
	ServiceName     string            `json:"serviceName"`
	ClientName      string            `json:"clientName"`
	ClientEmail     string            `json:"clientEmail"`
	ClientPhone     string            `json:"clientPhone"`
	Date            string            `json:"date"`
	StartTime       string            `json:"startTime"`
	DurationMinutes int               `json:"durationMinutes"`
	PriceCents      int64             `json:"priceCents"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// AppointmentListResponse wraps the full, freshly fetched collection.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Total int                   `json:"total"`
}

// MutationResponse is returned by every write operation. It carries the
// mutated appointment plus a fresh snapshot of the full collection so
// clients never render from stale partial updates.
type MutationResponse struct {
	Appointment  AppointmentResponse   `json:"appointment"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatsResponse summarizes the appointment collection.
type StatsResponse struct {
	Total            int   `json:"total"`
	Today            int   `json:"today"`
	Scheduled        int   `json:"scheduled"`
	Confirmed        int   `json:"confirmed"`
	Completed        int   `json:"completed"`
	Cancelled        int   `json:"cancelled"`
	NoShow           int   `json:"noShow"`
	WeekRevenueCents int64 `json:"weekRevenueCents"`
}

// SlotUnavailableReason says why a slot cannot be booked. The set is
// closed: a slot is either taken or starts too soon.
type SlotUnavailableReason string

const (
	SlotReasonOccupied           SlotUnavailableReason = "occupied"
	SlotReasonInsufficientNotice SlotUnavailableReason = "insufficient advance notice"
)

// SlotResponse is a single bookable time slot for a day.
type SlotResponse struct {
	Time      string                `json:"time"`
	Available bool                  `json:"available"`
	Reason    SlotUnavailableReason `json:"reason,omitempty"`
}

// DayAvailabilityResponse lists every slot of a day with availability.
type DayAvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// AvailableDatesResponse lists the dates currently open for booking.
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// AttachmentResponse describes an uploaded appointment attachment.
type AttachmentResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	FileName      string    `json:"fileName"`
	ContentType   string    `json:"contentType"`
	SizeBytes     int64     `json:"sizeBytes"`
	ObjectKey     string    `json:"objectKey"`
	CreatedAt     time.Time `json:"createdAt"`
}

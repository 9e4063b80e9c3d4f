package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/transport"
	"careportal_backend/internal/events"
	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"

	"github.com/google/uuid"
)

// Store is the persistence surface the service depends on. The repository
// implements it against Postgres; tests provide a fake.
type Store interface {
	List(ctx context.Context, partnerID *uuid.UUID) ([]repository.Appointment, error)
	ListForDate(ctx context.Context, partnerID *uuid.UUID, date string) ([]repository.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Appointment, error)
	Create(ctx context.Context, appt *repository.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) error
	ListAttachments(ctx context.Context, appointmentID uuid.UUID) ([]repository.Attachment, error)
	GetAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) (*repository.Attachment, error)
	CreateAttachment(ctx context.Context, att *repository.Attachment) error
	DeleteAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) error
}

// FileStore stores attachment payloads in object storage.
type FileStore interface {
	Validate(contentType string, size int64) error
	Upload(ctx context.Context, objectKey, contentType string, size int64, r io.Reader) error
	PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, objectKey string) error
}

// ReminderScheduler enqueues appointment reminder tasks.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appointmentID uuid.UUID, remindAt time.Time) error
}

// Service provides business logic for appointments.
type Service struct {
	store        Store
	files        FileStore
	eventBus     events.Bus
	reminders    ReminderScheduler
	reminderLead time.Duration
	log          *logger.Logger
}

// New creates a new appointments service. files and reminders may be nil
// when object storage or the task queue are not configured.
func New(store Store, files FileStore, eventBus events.Bus, reminders ReminderScheduler, reminderLead time.Duration, log *logger.Logger) *Service {
	if reminderLead <= 0 {
		reminderLead = minNoticeHours * time.Hour
	}
	return &Service{
		store:        store,
		files:        files,
		eventBus:     eventBus,
		reminders:    reminders,
		reminderLead: reminderLead,
		log:          log,
	}
}

// List returns the appointments matching the requested view, status,
// service and search term, filtered in memory over a fresh snapshot of
// the collection. A non-nil scope restricts the snapshot to one partner.
func (s *Service) List(ctx context.Context, scope *uuid.UUID, req transport.ListAppointmentsRequest) (*transport.AppointmentListResponse, error) {
	appts, err := s.store.List(ctx, scope)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load appointments", err)
	}

	serviceID := uuid.Nil
	if req.ServiceID != "" {
		serviceID, err = uuid.Parse(req.ServiceID)
		if err != nil {
			return nil, apperr.BadRequest("invalid service id")
		}
	}

	filtered := FilterView(appts, req.View, time.Now())
	filtered = FilterStatus(filtered, req.Status)
	filtered = FilterService(filtered, serviceID)
	filtered = FilterSearch(filtered, req.Search)

	items := make([]transport.AppointmentResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, filtered[i].ToResponse())
	}

	return &transport.AppointmentListResponse{Items: items, Total: len(items)}, nil
}

// Stats summarizes the collection visible under the scope.
func (s *Service) Stats(ctx context.Context, scope *uuid.UUID) (*transport.StatsResponse, error) {
	appts, err := s.store.List(ctx, scope)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load appointments", err)
	}

	stats := Stats(appts, time.Now())
	return &stats, nil
}

// GetByID returns a single appointment. A scoped caller only sees its own
// partner's appointments; anything else reads as not found.
func (s *Service) GetByID(ctx context.Context, scope *uuid.UUID, id uuid.UUID) (*transport.AppointmentResponse, error) {
	appt, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope != nil && appt.PartnerID != *scope {
		return nil, apperr.NotFound("appointment not found")
	}
	resp := appt.ToResponse()
	return &resp, nil
}

// AvailableDates returns the dates currently open for booking.
func (s *Service) AvailableDates() transport.AvailableDatesResponse {
	return transport.AvailableDatesResponse{Dates: AvailableDates(time.Now())}
}

// Availability returns every slot of the given date annotated with
// availability and the reason when blocked. A nil partnerID checks
// occupancy across all partners.
func (s *Service) Availability(ctx context.Context, partnerID *uuid.UUID, date string) (*transport.DayAvailabilityResponse, error) {
	now := time.Now()
	if !DateBookable(now, date) {
		return nil, apperr.BadRequest("date not available for booking")
	}

	existing, err := s.store.ListForDate(ctx, partnerID, date)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load appointments", err)
	}

	booked := make(map[string]bool, len(existing))
	for _, appt := range existing {
		booked[appt.StartTime] = true
	}

	return &transport.DayAvailabilityResponse{
		Date:  date,
		Slots: DaySlots(now, date, booked),
	}, nil
}

// Book creates an appointment from a validated booking request and returns
// the new appointment together with a fresh snapshot of the collection.
// Availability is not re-checked here; the booked slot map shown to the
// client is advisory and the last snapshot wins.
func (s *Service) Book(ctx context.Context, req transport.BookAppointmentRequest) (*transport.MutationResponse, error) {
	appt := &repository.Appointment{
		PartnerID:       req.PartnerID,
		ServiceID:       req.ServiceID,
		ServiceName:     req.ServiceName,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Status:          string(transport.AppointmentStatusScheduled),
	}
	if req.Notes != "" {
		notes := req.Notes
		appt.Notes = &notes
	}

	if err := s.store.Create(ctx, appt); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to submit booking", err)
	}

	resp, err := s.mutationResponse(ctx, nil, appt.ID)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.AppointmentBooked{
			BaseEvent:     events.NewBaseEvent(),
			AppointmentID: appt.ID,
			PartnerID:     appt.PartnerID,
			ServiceName:   appt.ServiceName,
			ClientName:    appt.ClientName,
			ClientEmail:   appt.ClientEmail,
			Date:          appt.Date,
			StartTime:     appt.StartTime,
		})
	}

	s.scheduleReminder(ctx, appt)

	return resp, nil
}

// UpdateStatus transitions an appointment to a new status, optionally
// replacing its notes in the same write. The transition is validated
// against the current status before anything is written. The refreshed
// collection in the response is limited to the scope.
func (s *Service) UpdateStatus(ctx context.Context, scope *uuid.UUID, id uuid.UUID, to transport.AppointmentStatus, notes *string) (*transport.MutationResponse, error) {
	return s.transition(ctx, scope, id, to, notes)
}

// Cancel cancels an appointment. A non-empty reason is recorded in the
// notes; without one the notes are left untouched.
func (s *Service) Cancel(ctx context.Context, scope *uuid.UUID, id uuid.UUID, reason string) (*transport.MutationResponse, error) {
	var notes *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		formatted := fmt.Sprintf("Cancellation reason: %s", trimmed)
		notes = &formatted
	}
	return s.transition(ctx, scope, id, transport.AppointmentStatusCancelled, notes)
}

func (s *Service) transition(ctx context.Context, scope *uuid.UUID, id uuid.UUID, to transport.AppointmentStatus, notes *string) (*transport.MutationResponse, error) {
	appt, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope != nil && appt.PartnerID != *scope {
		return nil, apperr.NotFound("appointment not found")
	}

	from := transport.AppointmentStatus(appt.Status)
	if err := ValidateTransition(from, to); err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatus(ctx, id, string(to), notes); err != nil {
		return nil, err
	}

	resp, err := s.mutationResponse(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		evt := events.AppointmentStatusChanged{
			BaseEvent:     events.NewBaseEvent(),
			AppointmentID: appt.ID,
			PartnerID:     appt.PartnerID,
			ServiceName:   appt.ServiceName,
			ClientName:    appt.ClientName,
			ClientEmail:   appt.ClientEmail,
			Date:          appt.Date,
			StartTime:     appt.StartTime,
			FromStatus:    string(from),
			ToStatus:      string(to),
		}
		if notes != nil {
			evt.Notes = *notes
		}
		s.eventBus.Publish(ctx, evt)
	}

	return resp, nil
}

// mutationResponse re-reads the full collection after a write and locates
// the mutated appointment in the fresh snapshot. Write operations never
// patch state locally.
func (s *Service) mutationResponse(ctx context.Context, scope *uuid.UUID, id uuid.UUID) (*transport.MutationResponse, error) {
	appts, err := s.store.List(ctx, scope)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load appointments", err)
	}

	resp := &transport.MutationResponse{
		Appointments: make([]transport.AppointmentResponse, 0, len(appts)),
	}
	for i := range appts {
		item := appts[i].ToResponse()
		resp.Appointments = append(resp.Appointments, item)
		if item.ID == id {
			resp.Appointment = item
		}
	}

	if resp.Appointment.ID == uuid.Nil {
		return nil, apperr.Internal("appointment missing from refreshed collection")
	}
	return resp, nil
}

// scheduleReminder enqueues a reminder ahead of the appointment start.
// Scheduling failures are non-fatal; the booking already succeeded, so
// they are logged and nothing else.
func (s *Service) scheduleReminder(ctx context.Context, appt *repository.Appointment) {
	if s.reminders == nil {
		return
	}

	start, err := time.ParseInLocation(dateFormat+" "+slotTimeFormat, appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		s.log.ReminderScheduleFailed(appt.ID.String(), err)
		return
	}

	remindAt := start.Add(-s.reminderLead)
	if remindAt.Before(time.Now()) {
		return
	}

	if err := s.reminders.ScheduleAppointmentReminder(ctx, appt.ID, remindAt); err != nil {
		s.log.ReminderScheduleFailed(appt.ID.String(), err)
	}
}

package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/transport"
	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeStore keeps appointments in memory and records calls so tests can
// assert on the re-fetch behavior after mutations.
type fakeStore struct {
	appts     map[uuid.UUID]*repository.Appointment
	atts      map[uuid.UUID]*repository.Attachment
	listCalls int
	failList  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appts: make(map[uuid.UUID]*repository.Appointment),
		atts:  make(map[uuid.UUID]*repository.Attachment),
	}
}

func (f *fakeStore) List(ctx context.Context, partnerID *uuid.UUID) ([]repository.Appointment, error) {
	f.listCalls++
	if f.failList {
		return nil, errors.New("boom")
	}
	out := make([]repository.Appointment, 0, len(f.appts))
	for _, a := range f.appts {
		if partnerID != nil && a.PartnerID != *partnerID {
			continue
		}
		out = append(out, *a)
	}
	// Mirror the repository ordering: date desc, start time desc.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

func (f *fakeStore) ListForDate(ctx context.Context, partnerID *uuid.UUID, date string) ([]repository.Appointment, error) {
	var out []repository.Appointment
	for _, a := range f.appts {
		if partnerID != nil && a.PartnerID != *partnerID {
			continue
		}
		if a.Date == date && a.Status != "cancelled" {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*repository.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, apperr.NotFound("appointment not found")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) Create(ctx context.Context, appt *repository.Appointment) error {
	// Mirror the repository: it assigns the id and the database fills in
	// the timestamps.
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) error {
	a, ok := f.appts[id]
	if !ok {
		return apperr.NotFound("appointment not found")
	}
	a.Status = status
	if notes != nil {
		a.Notes = notes
	}
	return nil
}

func (f *fakeStore) ListAttachments(ctx context.Context, appointmentID uuid.UUID) ([]repository.Attachment, error) {
	var out []repository.Attachment
	for _, att := range f.atts {
		if att.AppointmentID == appointmentID {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (f *fakeStore) GetAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) (*repository.Attachment, error) {
	att, ok := f.atts[attachmentID]
	if !ok || att.AppointmentID != appointmentID {
		return nil, apperr.NotFound("attachment not found")
	}
	cp := *att
	return &cp, nil
}

func (f *fakeStore) CreateAttachment(ctx context.Context, att *repository.Attachment) error {
	cp := *att
	f.atts[att.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) error {
	att, ok := f.atts[attachmentID]
	if !ok || att.AppointmentID != appointmentID {
		return apperr.NotFound("attachment not found")
	}
	delete(f.atts, attachmentID)
	return nil
}

func (f *fakeStore) seed(date, startTime, status string) uuid.UUID {
	id := uuid.New()
	f.appts[id] = &repository.Appointment{
		ID:          id,
		PartnerID:   uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Consulta",
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ClientPhone: "(11) 98765-4321",
		Date:        date,
		StartTime:   startTime,
		Status:      status,
	}
	return id
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func newTestService(store Store) *Service {
	return New(store, nil, nil, nil, 0, logger.New("test"))
}

// failingReminders always refuses to enqueue.
type failingReminders struct {
	calls int
}

func (f *failingReminders) ScheduleAppointmentReminder(ctx context.Context, appointmentID uuid.UUID, remindAt time.Time) error {
	f.calls++
	return errors.New("queue unavailable")
}

func TestBookReturnsFreshCollection(t *testing.T) {
	store := newFakeStore()
	store.seed(futureDate(2), "09:00", "scheduled")
	svc := newTestService(store)

	listCallsBefore := store.listCalls
	resp, err := svc.Book(context.Background(), transport.BookAppointmentRequest{
		PartnerID:       uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Fisioterapia",
		ClientName:      "Joao Santos",
		ClientEmail:     "joao@example.com",
		ClientPhone:     "(21) 99999-8888",
		Date:            futureDate(3),
		StartTime:       "10:00",
		DurationMinutes: 30,
		PriceCents:      15000,
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if store.listCalls != listCallsBefore+1 {
		t.Errorf("expected one re-fetch after booking, got %d extra calls", store.listCalls-listCallsBefore)
	}
	if resp.Appointment.Status != transport.AppointmentStatusScheduled {
		t.Errorf("new appointment status = %s, want scheduled", resp.Appointment.Status)
	}
	if resp.Appointment.ClientName != "Joao Santos" {
		t.Errorf("appointment = %+v", resp.Appointment)
	}
	if len(resp.Appointments) != 2 {
		t.Errorf("expected full collection of 2, got %d", len(resp.Appointments))
	}
}

func TestBookWithNotes(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	resp, err := svc.Book(context.Background(), transport.BookAppointmentRequest{
		PartnerID:   uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Consulta",
		ClientName:  "Maria",
		ClientEmail: "maria@example.com",
		ClientPhone: "(11) 98765-4321",
		Date:        futureDate(5),
		StartTime:   "08:00",
		Notes:       "first visit",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if resp.Appointment.Notes == nil || *resp.Appointment.Notes != "first visit" {
		t.Errorf("notes = %v, want %q", resp.Appointment.Notes, "first visit")
	}
}

func TestBookSurvivesReminderSchedulingFailure(t *testing.T) {
	store := newFakeStore()
	reminders := &failingReminders{}
	svc := New(store, nil, nil, reminders, 0, logger.New("test"))

	resp, err := svc.Book(context.Background(), transport.BookAppointmentRequest{
		PartnerID:   uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Consulta",
		ClientName:  "Maria",
		ClientEmail: "maria@example.com",
		ClientPhone: "(11) 98765-4321",
		Date:        futureDate(5),
		StartTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("Book failed despite reminder-only error: %v", err)
	}
	if reminders.calls != 1 {
		t.Errorf("reminder scheduler calls = %d, want 1", reminders.calls)
	}
	if resp.Appointment.Status != transport.AppointmentStatusScheduled {
		t.Errorf("status = %s, want scheduled", resp.Appointment.Status)
	}
}

func TestUpdateStatusValidatesBeforeWrite(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "completed")
	svc := newTestService(store)

	_, err := svc.UpdateStatus(context.Background(), nil, id, transport.AppointmentStatusConfirmed, nil)
	if err == nil {
		t.Fatal("expected transition from completed to be rejected")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if store.appts[id].Status != "completed" {
		t.Errorf("status was written despite invalid transition: %s", store.appts[id].Status)
	}
}

func TestUpdateStatusReturnsRefreshedCollection(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "scheduled")
	other := store.seed(futureDate(3), "11:00", "scheduled")
	svc := newTestService(store)

	resp, err := svc.UpdateStatus(context.Background(), nil, id, transport.AppointmentStatusConfirmed, nil)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if resp.Appointment.ID != id {
		t.Errorf("mutated appointment not located in snapshot")
	}
	if resp.Appointment.Status != transport.AppointmentStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Appointment.Status)
	}
	if len(resp.Appointments) != 2 {
		t.Fatalf("expected 2 appointments in snapshot, got %d", len(resp.Appointments))
	}
	for _, a := range resp.Appointments {
		if a.ID == other && a.Status != transport.AppointmentStatusScheduled {
			t.Errorf("untouched appointment changed: %+v", a)
		}
	}
}

func TestCancelRecordsReason(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "confirmed")
	svc := newTestService(store)

	resp, err := svc.Cancel(context.Background(), nil, id, "client request")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if resp.Appointment.Status != transport.AppointmentStatusCancelled {
		t.Errorf("status = %s, want cancelled", resp.Appointment.Status)
	}
	if resp.Appointment.Notes == nil || *resp.Appointment.Notes != "Cancellation reason: client request" {
		t.Errorf("notes = %v", resp.Appointment.Notes)
	}
}

func TestCancelWithoutReasonLeavesNotesAlone(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "confirmed")
	existing := "bring previous exams"
	store.appts[id].Notes = &existing
	svc := newTestService(store)

	resp, err := svc.Cancel(context.Background(), nil, id, "  ")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if resp.Appointment.Status != transport.AppointmentStatusCancelled {
		t.Errorf("status = %s, want cancelled", resp.Appointment.Status)
	}
	if resp.Appointment.Notes == nil || *resp.Appointment.Notes != existing {
		t.Errorf("notes = %v, want untouched %q", resp.Appointment.Notes, existing)
	}
}

func TestCancelTerminalAppointmentFails(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "cancelled")
	svc := newTestService(store)

	if _, err := svc.Cancel(context.Background(), nil, id, "again"); err == nil {
		t.Fatal("expected cancelling a cancelled appointment to fail")
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.UpdateStatus(context.Background(), nil, uuid.New(), transport.AppointmentStatusConfirmed, nil)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAvailabilityRejectsUnbookableDate(t *testing.T) {
	svc := newTestService(newFakeStore())

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := svc.Availability(context.Background(), nil, yesterday)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestAvailabilityMarksBookedSlots(t *testing.T) {
	store := newFakeStore()
	partnerID := uuid.New()
	date := futureDate(10)
	// Skip Sundays: step one day forward until bookable.
	for !DateBookable(time.Now(), date) {
		d, _ := time.Parse("2006-01-02", date)
		date = d.AddDate(0, 0, 1).Format("2006-01-02")
	}
	id := store.seed(date, "09:00", "scheduled")
	store.appts[id].PartnerID = partnerID
	svc := newTestService(store)

	resp, err := svc.Availability(context.Background(), &partnerID, date)
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if resp.Date != date {
		t.Errorf("date = %s, want %s", resp.Date, date)
	}
	for _, slot := range resp.Slots {
		if slot.Time == "09:00" {
			if slot.Available || slot.Reason != transport.SlotReasonOccupied {
				t.Errorf("09:00 = %+v, want occupied", slot)
			}
		}
	}
}

func TestListFiltersViewAndSearch(t *testing.T) {
	store := newFakeStore()
	today := time.Now().Format("2006-01-02")
	idToday := store.seed(today, "09:00", "scheduled")
	store.appts[idToday].ClientName = "Maria Silva"
	idOld := store.seed("2001-01-01", "09:00", "completed")
	store.appts[idOld].ClientName = "Maria Silva"
	svc := newTestService(store)

	resp, err := svc.List(context.Background(), nil, transport.ListAppointmentsRequest{
		View:   transport.ViewToday,
		Search: "maria",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if resp.Items[0].ID != idToday {
		t.Errorf("wrong appointment returned: %+v", resp.Items[0])
	}
}

func TestListScopedToPartner(t *testing.T) {
	store := newFakeStore()
	mine := store.seed(futureDate(2), "09:00", "scheduled")
	store.seed(futureDate(2), "10:00", "scheduled")
	partnerID := store.appts[mine].PartnerID
	svc := newTestService(store)

	resp, err := svc.List(context.Background(), &partnerID, transport.ListAppointmentsRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != mine {
		t.Errorf("scoped list = %+v, want only own appointment", resp.Items)
	}
}

func TestListFiltersStatusAndService(t *testing.T) {
	store := newFakeStore()
	confirmed := store.seed(futureDate(2), "09:00", "confirmed")
	store.seed(futureDate(2), "10:00", "scheduled")
	serviceID := store.appts[confirmed].ServiceID
	svc := newTestService(store)

	resp, err := svc.List(context.Background(), nil, transport.ListAppointmentsRequest{
		Status:    transport.AppointmentStatusConfirmed,
		ServiceID: serviceID.String(),
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != confirmed {
		t.Errorf("filtered list = %+v, want only the confirmed appointment", resp.Items)
	}
}

func TestListRejectsMalformedServiceID(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.List(context.Background(), nil, transport.ListAppointmentsRequest{ServiceID: "not-a-uuid"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestTransitionScopedToOtherPartnerReadsNotFound(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "scheduled")
	svc := newTestService(store)

	other := uuid.New()
	_, err := svc.UpdateStatus(context.Background(), &other, id, transport.AppointmentStatusConfirmed, nil)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if store.appts[id].Status != "scheduled" {
		t.Errorf("status changed across partner boundary: %s", store.appts[id].Status)
	}
}

func TestGetByIDScopedToOtherPartnerReadsNotFound(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(2), "09:00", "scheduled")
	svc := newTestService(store)

	other := uuid.New()
	_, err := svc.GetByID(context.Background(), &other, id)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	owner := store.appts[id].PartnerID
	if _, err := svc.GetByID(context.Background(), &owner, id); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestListPropagatesStoreError(t *testing.T) {
	store := newFakeStore()
	store.failList = true
	svc := newTestService(store)

	if _, err := svc.List(context.Background(), nil, transport.ListAppointmentsRequest{}); err == nil {
		t.Fatal("expected error from store")
	}
}

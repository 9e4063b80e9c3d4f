package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"careportal_backend/platform/apperr"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func appointmentRowColumns() []string {
	return []string{
		"id", "partner_id", "service_id", "service_name", "client_name", "client_email", "client_phone",
		"to_char", "start_time", "duration_minutes", "price_cents", "status", "notes", "created_at", "updated_at",
	}
}

func appointmentRow(mock pgxmock.PgxPoolIface, appt Appointment) *pgxmock.Rows {
	return mock.NewRows(appointmentRowColumns()).AddRow(
		appt.ID, appt.PartnerID, appt.ServiceID, appt.ServiceName,
		appt.ClientName, appt.ClientEmail, appt.ClientPhone,
		appt.Date, appt.StartTime, appt.DurationMinutes, appt.PriceCents,
		appt.Status, appt.Notes, appt.CreatedAt, appt.UpdatedAt,
	)
}

func sampleAppointment() Appointment {
	now := time.Now()
	return Appointment{
		ID:              uuid.New(),
		PartnerID:       uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Consulta",
		ClientName:      "Maria Silva",
		ClientEmail:     "maria@example.com",
		ClientPhone:     "(11) 98765-4321",
		Date:            "2025-06-10",
		StartTime:       "09:00",
		DurationMinutes: 30,
		PriceCents:      15000,
		Status:          "scheduled",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM appointments WHERE id").
		WithArgs(id).
		WillReturnRows(mock.NewRows(appointmentRowColumns()))

	repo := New(mock)
	_, err = repo.GetByID(context.Background(), id)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetByIDReturnsAppointment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	want := sampleAppointment()
	mock.ExpectQuery("SELECT .+ FROM appointments WHERE id").
		WithArgs(want.ID).
		WillReturnRows(appointmentRow(mock, want))

	repo := New(mock)
	got, err := repo.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != want.ID || got.Date != "2025-06-10" || got.StartTime != "09:00" {
		t.Errorf("got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListOrdersByDateAndStartTimeDesc(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	a := sampleAppointment()
	b := sampleAppointment()
	b.Date = "2025-06-09"

	rows := appointmentRow(mock, a).AddRow(
		b.ID, b.PartnerID, b.ServiceID, b.ServiceName,
		b.ClientName, b.ClientEmail, b.ClientPhone,
		b.Date, b.StartTime, b.DurationMinutes, b.PriceCents,
		b.Status, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	mock.ExpectQuery(`SELECT .+ FROM appointments ORDER BY date DESC, start_time DESC`).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListScopedFiltersByPartner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	partnerID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE partner_id = \$1 ORDER BY date DESC, start_time DESC`).
		WithArgs(partnerID).
		WillReturnRows(mock.NewRows(appointmentRowColumns()))

	repo := New(mock)
	got, err := repo.List(context.Background(), &partnerID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListForDateExcludesCancelled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	partnerID := uuid.New()
	mock.ExpectQuery(`status != 'cancelled' AND partner_id = \$2`).
		WithArgs("2025-06-10", partnerID).
		WillReturnRows(mock.NewRows(appointmentRowColumns()))

	repo := New(mock)
	got, err := repo.ListForDate(context.Background(), &partnerID, "2025-06-10")
	if err != nil {
		t.Fatalf("ListForDate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListForDateAcrossAllPartners(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(`WHERE date = \$1::date AND status != 'cancelled' ORDER BY start_time`).
		WithArgs("2025-06-10").
		WillReturnRows(mock.NewRows(appointmentRowColumns()))

	repo := New(mock)
	if _, err := repo.ListForDate(context.Background(), nil, "2025-06-10"); err != nil {
		t.Fatalf("ListForDate failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateAssignsIDAndReadsTimestamps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	appt := sampleAppointment()
	appt.ID = uuid.Nil
	appt.CreatedAt = time.Time{}
	appt.UpdatedAt = time.Time{}

	created := time.Now()
	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(
			pgxmock.AnyArg(), appt.PartnerID, appt.ServiceID, appt.ServiceName,
			appt.ClientName, appt.ClientEmail, appt.ClientPhone,
			appt.Date, appt.StartTime, appt.DurationMinutes, appt.PriceCents,
			appt.Status, appt.Notes,
		).
		WillReturnRows(mock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	repo := New(mock)
	if err := repo.Create(context.Background(), &appt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if appt.ID == uuid.Nil {
		t.Error("expected Create to assign an id")
	}
	if !appt.CreatedAt.Equal(created) || !appt.UpdatedAt.Equal(created) {
		t.Errorf("timestamps not read back: %+v", appt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateStatusWithNotes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	id := uuid.New()
	notes := "Cancellation reason: client request"
	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(id, "cancelled", notes, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := New(mock)
	if err := repo.UpdateStatus(context.Background(), id, "cancelled", &notes); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(id, "confirmed", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := New(mock)
	err = repo.UpdateStatus(context.Background(), id, "confirmed", nil)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteAttachmentRemovesRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	appointmentID := uuid.New()
	attachmentID := uuid.New()
	mock.ExpectExec("DELETE FROM appointment_attachments").
		WithArgs(attachmentID, appointmentID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := New(mock)
	if err := repo.DeleteAttachment(context.Background(), appointmentID, attachmentID); err != nil {
		t.Fatalf("DeleteAttachment failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteAttachmentNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	appointmentID := uuid.New()
	attachmentID := uuid.New()
	mock.ExpectExec("DELETE FROM appointment_attachments").
		WithArgs(attachmentID, appointmentID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := New(mock)
	err = repo.DeleteAttachment(context.Background(), appointmentID, attachmentID)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

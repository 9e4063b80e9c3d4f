package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careportal_backend/internal/appointments/transport"
	"careportal_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Appointment represents the appointment database model. Date and start
// time are kept as the plain strings the rest of the domain works with;
// the queries cast to and from the SQL types.
type Appointment struct {
	ID              uuid.UUID `db:"id"`
	PartnerID       uuid.UUID `db:"partner_id"`
	ServiceID       uuid.UUID `db:"service_id"`
	ServiceName     string    `db:"service_name"`
	ClientName      string    `db:"client_name"`
	ClientEmail     string    `db:"client_email"`
	ClientPhone     string    `db:"client_phone"`
	Date            string    `db:"date"`       // YYYY-MM-DD
	StartTime       string    `db:"start_time"` // HH:MM
	DurationMinutes int       `db:"duration_minutes"`
	PriceCents      int64     `db:"price_cents"`
	Status          string    `db:"status"`
	Notes           *string   `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// ToResponse maps the database model to the transport representation.
func (a *Appointment) ToResponse() transport.AppointmentResponse {
	return transport.AppointmentResponse{
		ID:              a.ID,
		PartnerID:       a.PartnerID,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		Date:            a.Date,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		PriceCents:      a.PriceCents,
		Status:          transport.AppointmentStatus(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// DB is the subset of pgxpool.Pool the repository uses. Tests inject a
// pgxmock connection through the same interface.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository provides database operations for appointments.
type Repository struct {
	db DB
}

const appointmentNotFoundMsg = "appointment not found"

const appointmentColumns = `id, partner_id, service_id, service_name, client_name, client_email, client_phone,
		to_char(date, 'YYYY-MM-DD'), start_time, duration_minutes, price_cents, status, notes, created_at, updated_at`

// New creates a new appointments repository.
func New(db DB) *Repository {
	return &Repository{db: db}
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var appt Appointment
	err := row.Scan(
		&appt.ID, &appt.PartnerID, &appt.ServiceID, &appt.ServiceName,
		&appt.ClientName, &appt.ClientEmail, &appt.ClientPhone,
		&appt.Date, &appt.StartTime, &appt.DurationMinutes, &appt.PriceCents,
		&appt.Status, &appt.Notes, &appt.CreatedAt, &appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// Create inserts a new appointment. The repository assigns the ID and the
// database assigns the timestamps, which are read back into appt.
func (r *Repository) Create(ctx context.Context, appt *Appointment) error {
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query := `
		INSERT INTO appointments (
			id, partner_id, service_id, service_name, client_name, client_email, client_phone,
			date, start_time, duration_minutes, price_cents, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11, $12, $13
		)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		appt.ID, appt.PartnerID, appt.ServiceID, appt.ServiceName,
		appt.ClientName, appt.ClientEmail, appt.ClientPhone,
		appt.Date, appt.StartTime, appt.DurationMinutes, appt.PriceCents,
		appt.Status, appt.Notes,
	).Scan(&appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// GetByID retrieves an appointment by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appt, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(appointmentNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appt, nil
}

// List retrieves the appointment collection, newest day first and latest
// start time first within a day, optionally scoped to one partner. Every
// mutation re-reads through this query so callers always hold a
// consistent snapshot.
func (r *Repository) List(ctx context.Context, partnerID *uuid.UUID) ([]Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	args := make([]any, 0, 1)
	if partnerID != nil {
		query += ` WHERE partner_id = $1`
		args = append(args, *partnerID)
	}
	query += ` ORDER BY date DESC, start_time DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	items := make([]Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		items = append(items, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return items, nil
}

// ListForDate retrieves the non-cancelled appointments on a date,
// optionally for one partner. Used to mark booked slots; cancelled
// appointments free their slot.
func (r *Repository) ListForDate(ctx context.Context, partnerID *uuid.UUID, date string) ([]Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE date = $1::date AND status != 'cancelled'`
	args := []any{date}
	if partnerID != nil {
		query += ` AND partner_id = $2`
		args = append(args, *partnerID)
	}
	query += ` ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for date: %w", err)
	}
	defer rows.Close()

	items := make([]Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		items = append(items, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return items, nil
}

// UpdateStatus updates the status of an appointment, optionally replacing
// its notes in the same write.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) error {
	var (
		result pgconn.CommandTag
		err    error
	)
	if notes != nil {
		query := `UPDATE appointments SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`
		result, err = r.db.Exec(ctx, query, id, status, *notes, time.Now())
	} else {
		query := `UPDATE appointments SET status = $2, updated_at = $3 WHERE id = $1`
		result, err = r.db.Exec(ctx, query, id, status, time.Now())
	}
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(appointmentNotFoundMsg)
	}

	return nil
}

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
)

// Attachment represents a file stored against an appointment.
type Attachment struct {
	ID            uuid.UUID `db:"id"`
	AppointmentID uuid.UUID `db:"appointment_id"`
	FileName      string    `db:"file_name"`
	ContentType   string    `db:"content_type"`
	SizeBytes     int64     `db:"size_bytes"`
	ObjectKey     string    `db:"object_key"`
	CreatedAt     time.Time `db:"created_at"`
}

// ToResponse maps the attachment to its transport representation.
func (a *Attachment) ToResponse() transport.AttachmentResponse {
	return transport.AttachmentResponse{
		ID:            a.ID,
		AppointmentID: a.AppointmentID,
		FileName:      a.FileName,
		ContentType:   a.ContentType,
		SizeBytes:     a.SizeBytes,
		ObjectKey:     a.ObjectKey,
		CreatedAt:     a.CreatedAt,
	}
}

// CreateAttachment inserts an attachment record.
func (r *Repository) CreateAttachment(ctx context.Context, att *Attachment) error {
	query := `
		INSERT INTO appointment_attachments (id, appointment_id, file_name, content_type, size_bytes, object_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		att.ID, att.AppointmentID, att.FileName, att.ContentType, att.SizeBytes, att.ObjectKey, att.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return nil
}

// ListAttachments retrieves the attachments for an appointment.
func (r *Repository) ListAttachments(ctx context.Context, appointmentID uuid.UUID) ([]Attachment, error) {
	query := `SELECT id, appointment_id, file_name, content_type, size_bytes, object_key, created_at
		FROM appointment_attachments WHERE appointment_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	items := make([]Attachment, 0)
	for rows.Next() {
		var att Attachment
		if err := rows.Scan(
			&att.ID, &att.AppointmentID, &att.FileName, &att.ContentType,
			&att.SizeBytes, &att.ObjectKey, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		items = append(items, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attachments: %w", err)
	}

	return items, nil
}

// GetAttachment retrieves a single attachment for an appointment.
func (r *Repository) GetAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) (*Attachment, error) {
	query := `SELECT id, appointment_id, file_name, content_type, size_bytes, object_key, created_at
		FROM appointment_attachments WHERE id = $1 AND appointment_id = $2`

	var att Attachment
	err := r.db.QueryRow(ctx, query, attachmentID, appointmentID).Scan(
		&att.ID, &att.AppointmentID, &att.FileName, &att.ContentType,
		&att.SizeBytes, &att.ObjectKey, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("attachment not found")
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &att, nil
}

// DeleteAttachment removes an attachment record for an appointment.
func (r *Repository) DeleteAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) error {
	query := `DELETE FROM appointment_attachments WHERE id = $1 AND appointment_id = $2`

	tag, err := r.db.Exec(ctx, query, attachmentID, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("attachment not found")
	}

	return nil
}

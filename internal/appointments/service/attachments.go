package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/transport"
	"careportal_backend/platform/apperr"

	"github.com/google/uuid"
)

const attachmentURLExpiry = 15 * time.Minute

// ListAttachments returns the attachment metadata for an appointment.
func (s *Service) ListAttachments(ctx context.Context, appointmentID uuid.UUID) ([]transport.AttachmentResponse, error) {
	if _, err := s.store.GetByID(ctx, appointmentID); err != nil {
		return nil, err
	}

	atts, err := s.store.ListAttachments(ctx, appointmentID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load attachments", err)
	}

	items := make([]transport.AttachmentResponse, 0, len(atts))
	for i := range atts {
		items = append(items, atts[i].ToResponse())
	}
	return items, nil
}

// AddAttachment streams a file into object storage and records its
// metadata against the appointment.
func (s *Service) AddAttachment(ctx context.Context, appointmentID uuid.UUID, fileName, contentType string, size int64, r io.Reader) (*transport.AttachmentResponse, error) {
	if s.files == nil {
		return nil, apperr.Internal("file storage is not configured")
	}

	if err := s.files.Validate(contentType, size); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if _, err := s.store.GetByID(ctx, appointmentID); err != nil {
		return nil, err
	}

	att := &repository.Attachment{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		FileName:      fileName,
		ContentType:   contentType,
		SizeBytes:     size,
		CreatedAt:     time.Now(),
	}
	att.ObjectKey = fmt.Sprintf("appointments/%s/%s-%s", appointmentID, att.ID, fileName)

	if err := s.files.Upload(ctx, att.ObjectKey, contentType, size, r); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to store attachment", err)
	}

	if err := s.store.CreateAttachment(ctx, att); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to record attachment", err)
	}

	resp := att.ToResponse()
	return &resp, nil
}

// AttachmentURL returns a short-lived download URL for an attachment.
func (s *Service) AttachmentURL(ctx context.Context, appointmentID, attachmentID uuid.UUID) (string, error) {
	if s.files == nil {
		return "", apperr.Internal("file storage is not configured")
	}

	att, err := s.store.GetAttachment(ctx, appointmentID, attachmentID)
	if err != nil {
		return "", err
	}

	url, err := s.files.PresignedURL(ctx, att.ObjectKey, attachmentURLExpiry)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "failed to presign attachment", err)
	}
	return url, nil
}

// RemoveAttachment deletes an attachment's stored object and its record.
func (s *Service) RemoveAttachment(ctx context.Context, appointmentID, attachmentID uuid.UUID) error {
	if s.files == nil {
		return apperr.Internal("file storage is not configured")
	}

	att, err := s.store.GetAttachment(ctx, appointmentID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.files.Delete(ctx, att.ObjectKey); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete attachment object", err)
	}

	return s.store.DeleteAttachment(ctx, appointmentID, attachmentID)
}

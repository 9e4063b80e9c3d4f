package adapters

import (
	"context"
	"io"
	"time"

	"careportal_backend/internal/adapters/storage"
	appointmentservice "careportal_backend/internal/appointments/service"
)

// AppointmentFilesAdapter scopes the shared storage service to the
// appointment attachments bucket, satisfying the appointments module's
// FileStore port.
type AppointmentFilesAdapter struct {
	storage storage.StorageService
	bucket  string
}

// NewAppointmentFilesAdapter creates the adapter.
func NewAppointmentFilesAdapter(storageSvc storage.StorageService, bucket string) *AppointmentFilesAdapter {
	return &AppointmentFilesAdapter{storage: storageSvc, bucket: bucket}
}

// Validate rejects payloads whose content type or size the storage
// service will not accept, before any bytes are streamed.
func (a *AppointmentFilesAdapter) Validate(contentType string, size int64) error {
	if err := a.storage.ValidateContentType(contentType); err != nil {
		return err
	}
	return a.storage.ValidateFileSize(size)
}

// Upload stores an attachment payload.
func (a *AppointmentFilesAdapter) Upload(ctx context.Context, objectKey, contentType string, size int64, r io.Reader) error {
	return a.storage.UploadFile(ctx, a.bucket, objectKey, contentType, r, size)
}

// PresignedURL returns a short-lived download URL for an attachment.
func (a *AppointmentFilesAdapter) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presigned, err := a.storage.GenerateDownloadURL(ctx, a.bucket, objectKey, expiry)
	if err != nil {
		return "", err
	}
	return presigned.URL, nil
}

// Delete removes a stored attachment object.
func (a *AppointmentFilesAdapter) Delete(ctx context.Context, objectKey string) error {
	return a.storage.DeleteObject(ctx, a.bucket, objectKey)
}

// Compile-time check against the appointments port.
var _ appointmentservice.FileStore = (*AppointmentFilesAdapter)(nil)

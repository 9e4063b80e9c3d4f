package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeFiles records object storage calls so tests can assert on what
// reached the bucket.
type fakeFiles struct {
	validateErr error
	uploaded    []string
	deleted     []string
}

func (f *fakeFiles) Validate(contentType string, size int64) error {
	return f.validateErr
}

func (f *fakeFiles) Upload(ctx context.Context, objectKey, contentType string, size int64, r io.Reader) error {
	f.uploaded = append(f.uploaded, objectKey)
	return nil
}

func (f *fakeFiles) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	return "https://files.test/" + objectKey, nil
}

func (f *fakeFiles) Delete(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func newAttachmentService(store *fakeStore, files FileStore) *Service {
	return New(store, files, nil, nil, 0, logger.New("test"))
}

func TestAddAttachmentStoresObjectAndMetadata(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(3), "09:00", "scheduled")
	files := &fakeFiles{}
	svc := newAttachmentService(store, files)

	resp, err := svc.AddAttachment(context.Background(), id, "exam.pdf", "application/pdf", 1024, strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("AddAttachment failed: %v", err)
	}
	if resp.FileName != "exam.pdf" {
		t.Errorf("expected file name exam.pdf, got %s", resp.FileName)
	}
	if len(files.uploaded) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(files.uploaded))
	}
	if len(store.atts) != 1 {
		t.Errorf("expected 1 attachment record, got %d", len(store.atts))
	}
}

func TestAddAttachmentRejectsDisallowedFile(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(3), "09:00", "scheduled")
	files := &fakeFiles{validateErr: errors.New("content type application/x-msdownload is not allowed")}
	svc := newAttachmentService(store, files)

	_, err := svc.AddAttachment(context.Background(), id, "setup.exe", "application/x-msdownload", 1024, strings.NewReader("mz"))
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(files.uploaded) != 0 {
		t.Errorf("rejected file must not reach storage, got %d uploads", len(files.uploaded))
	}
	if len(store.atts) != 0 {
		t.Errorf("rejected file must not be recorded, got %d records", len(store.atts))
	}
}

func TestRemoveAttachmentDeletesObjectAndRecord(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(3), "09:00", "scheduled")
	files := &fakeFiles{}
	svc := newAttachmentService(store, files)

	resp, err := svc.AddAttachment(context.Background(), id, "exam.pdf", "application/pdf", 1024, strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("AddAttachment failed: %v", err)
	}

	if err := svc.RemoveAttachment(context.Background(), id, resp.ID); err != nil {
		t.Fatalf("RemoveAttachment failed: %v", err)
	}
	if len(files.deleted) != 1 {
		t.Fatalf("expected 1 object deletion, got %d", len(files.deleted))
	}
	if files.deleted[0] != files.uploaded[0] {
		t.Errorf("deleted key %s does not match uploaded key %s", files.deleted[0], files.uploaded[0])
	}
	if len(store.atts) != 0 {
		t.Errorf("expected record removed, got %d remaining", len(store.atts))
	}
}

func TestRemoveAttachmentUnknownID(t *testing.T) {
	store := newFakeStore()
	id := store.seed(futureDate(3), "09:00", "scheduled")
	svc := newAttachmentService(store, &fakeFiles{})

	err := svc.RemoveAttachment(context.Background(), id, uuid.New())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"careportal_backend/internal/services/repository"
	"careportal_backend/internal/services/transport"
	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	created *repository.CreateParams
	updated *repository.UpdateParams
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (repository.CareService, error) {
	return repository.CareService{}, apperr.NotFound("service not found")
}

func (f *fakeRepo) List(ctx context.Context) ([]repository.CareService, error) {
	return nil, nil
}

func (f *fakeRepo) ListActive(ctx context.Context) ([]repository.CareService, error) {
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, params repository.CreateParams) (repository.CareService, error) {
	f.created = &params
	return repository.CareService{
		ID:              uuid.New(),
		Name:            params.Name,
		Description:     params.Description,
		DurationMinutes: params.DurationMinutes,
		PriceCents:      params.PriceCents,
		IsActive:        true,
	}, nil
}

func (f *fakeRepo) Update(ctx context.Context, params repository.UpdateParams) (repository.CareService, error) {
	f.updated = &params
	return repository.CareService{ID: params.ID, IsActive: true}, nil
}

func (f *fakeRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return nil
}

func TestCreateRejectsDurationOffSlotGrid(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("test"))

	_, err := svc.Create(context.Background(), transport.CreateCareServiceRequest{
		Name:            "Consulta",
		DurationMinutes: 45,
		PriceCents:      10000,
	})

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.created != nil {
		t.Error("repository must not be called for invalid duration")
	}
}

func TestCreateAcceptsSlotAlignedDuration(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("test"))

	resp, err := svc.Create(context.Background(), transport.CreateCareServiceRequest{
		Name:            "Fisioterapia",
		DurationMinutes: 60,
		PriceCents:      15000,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.DurationMinutes != 60 || !resp.IsActive {
		t.Errorf("resp = %+v", resp)
	}
}

func TestUpdateRejectsDurationOffSlotGrid(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("test"))

	bad := 45
	_, err := svc.Update(context.Background(), uuid.New(), transport.UpdateCareServiceRequest{
		DurationMinutes: &bad,
	})

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.updated != nil {
		t.Error("repository must not be called for invalid duration")
	}
}

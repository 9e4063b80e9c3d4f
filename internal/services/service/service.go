package service

import (
	"context"

	"github.com/google/uuid"

	"careportal_backend/internal/services/repository"
	"careportal_backend/internal/services/transport"
	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"
)

// Service provides business logic for care services.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new care services service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetByID retrieves a care service by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.CareServiceResponse, error) {
	cs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.CareServiceResponse{}, err
	}
	return toResponse(cs), nil
}

// List retrieves all care services, including inactive ones.
func (s *Service) List(ctx context.Context) (transport.CareServiceListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return transport.CareServiceListResponse{}, err
	}
	return toListResponse(items), nil
}

// ListActive retrieves the care services currently open for booking.
func (s *Service) ListActive(ctx context.Context) (transport.CareServiceListResponse, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return transport.CareServiceListResponse{}, err
	}
	return toListResponse(items), nil
}

// Create adds a new care service. Durations must line up with the slot
// grid so a booking always covers whole slots.
func (s *Service) Create(ctx context.Context, req transport.CreateCareServiceRequest) (transport.CareServiceResponse, error) {
	if req.DurationMinutes%30 != 0 {
		return transport.CareServiceResponse{}, apperr.Validation("durationMinutes must be a multiple of 30")
	}

	cs, err := s.repo.Create(ctx, repository.CreateParams{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
	})
	if err != nil {
		return transport.CareServiceResponse{}, err
	}

	s.log.Info("care service created", "id", cs.ID, "name", cs.Name)
	return toResponse(cs), nil
}

// Update modifies an existing care service.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateCareServiceRequest) (transport.CareServiceResponse, error) {
	if req.DurationMinutes != nil && *req.DurationMinutes%30 != 0 {
		return transport.CareServiceResponse{}, apperr.Validation("durationMinutes must be a multiple of 30")
	}

	cs, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
	})
	if err != nil {
		return transport.CareServiceResponse{}, err
	}

	return toResponse(cs), nil
}

// SetActive toggles whether a care service can be booked.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return s.repo.SetActive(ctx, id, isActive)
}

func toResponse(cs repository.CareService) transport.CareServiceResponse {
	return transport.CareServiceResponse{
		ID:              cs.ID,
		Name:            cs.Name,
		Description:     cs.Description,
		DurationMinutes: cs.DurationMinutes,
		PriceCents:      cs.PriceCents,
		IsActive:        cs.IsActive,
		CreatedAt:       cs.CreatedAt,
		UpdatedAt:       cs.UpdatedAt,
	}
}

func toListResponse(items []repository.CareService) transport.CareServiceListResponse {
	out := make([]transport.CareServiceResponse, 0, len(items))
	for _, cs := range items {
		out = append(out, toResponse(cs))
	}
	return transport.CareServiceListResponse{Items: out, Total: len(out)}
}

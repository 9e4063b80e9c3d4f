package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"careportal_backend/internal/partners/repository"
	"careportal_backend/internal/partners/transport"
	"careportal_backend/platform/phone"
)

// Service provides business logic for partners.
type Service struct {
	repo *repository.Repository
}

// New creates a new partners service.
func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a partner by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PartnerResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PartnerResponse{}, err
	}
	return toResponse(p), nil
}

// List retrieves all partners.
func (s *Service) List(ctx context.Context) (transport.PartnerListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return transport.PartnerListResponse{}, err
	}

	out := make([]transport.PartnerResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return transport.PartnerListResponse{Items: out, Total: len(out)}, nil
}

// ListPublic retrieves the partners accepting bookings, in the reduced
// public shape.
func (s *Service) ListPublic(ctx context.Context) (transport.PublicPartnerListResponse, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return transport.PublicPartnerListResponse{}, err
	}

	out := make([]transport.PublicPartnerResponse, 0, len(items))
	for _, p := range items {
		out = append(out, transport.PublicPartnerResponse{
			ID:         p.ID,
			Name:       p.Name,
			Profession: p.Profession,
			Bio:        p.Bio,
		})
	}
	return transport.PublicPartnerListResponse{Items: out, Total: len(out)}, nil
}

// IsBookable reports whether a partner exists and accepts bookings.
func (s *Service) IsBookable(ctx context.Context, id uuid.UUID) (bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p.IsActive, nil
}

// Create registers a partner. Phone numbers are normalized to E.164.
func (s *Service) Create(ctx context.Context, req transport.CreatePartnerRequest) (transport.PartnerResponse, error) {
	p, err := s.repo.Create(ctx, repository.CreateParams{
		Name:       req.Name,
		Profession: req.Profession,
		Email:      req.Email,
		Phone:      phone.NormalizeE164(req.Phone),
		Bio:        req.Bio,
	})
	if err != nil {
		return transport.PartnerResponse{}, err
	}
	return toResponse(p), nil
}

// Update modifies a partner.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePartnerRequest) (transport.PartnerResponse, error) {
	params := repository.UpdateParams{
		ID:         id,
		Name:       req.Name,
		Profession: req.Profession,
		Email:      req.Email,
		Bio:        req.Bio,
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		params.Phone = &normalized
	}

	p, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.PartnerResponse{}, err
	}
	return toResponse(p), nil
}

// SetActive toggles whether a partner accepts bookings.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return s.repo.SetActive(ctx, id, isActive)
}

func toResponse(p repository.Partner) transport.PartnerResponse {
	return transport.PartnerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Profession: p.Profession,
		Email:      p.Email,
		Phone:      p.Phone,
		Bio:        p.Bio,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}

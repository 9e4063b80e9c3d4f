package repository

import (
	"context"

	"github.com/google/uuid"
)

// CareService represents a bookable service offered through the platform.
type CareService struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	PriceCents      int64     `db:"price_cents"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       string    `db:"created_at"`
	UpdatedAt       string    `db:"updated_at"`
}

// CreateParams contains parameters for creating a care service.
type CreateParams struct {
	Name            string
	Description     *string
	DurationMinutes int
	PriceCents      int64
}

// UpdateParams contains parameters for updating a care service.
type UpdateParams struct {
	ID              uuid.UUID
	Name            *string
	Description     *string
	DurationMinutes *int
	PriceCents      *int64
}

// CareServiceReader provides read operations for care services.
type CareServiceReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (CareService, error)
	List(ctx context.Context) ([]CareService, error)
	ListActive(ctx context.Context) ([]CareService, error)
}

// CareServiceWriter provides write operations for care services.
type CareServiceWriter interface {
	Create(ctx context.Context, params CreateParams) (CareService, error)
	Update(ctx context.Context, params UpdateParams) (CareService, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
}

// Repository combines all care service repository operations.
type Repository interface {
	CareServiceReader
	CareServiceWriter
}

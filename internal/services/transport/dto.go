package transport

import "github.com/google/uuid"

// CreateCareServiceRequest contains data for creating a care service.
type CreateCareServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=30,max=480"`
	PriceCents      int64   `json:"priceCents" validate:"min=0"`
}

// UpdateCareServiceRequest contains data for updating a care service.
type UpdateCareServiceRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,min=30,max=480"`
	PriceCents      *int64  `json:"priceCents,omitempty" validate:"omitempty,min=0"`
}

// CareServiceResponse represents a care service in API responses.
type CareServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int64     `json:"priceCents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// CareServiceListResponse wraps a list of care services.
type CareServiceListResponse struct {
	Items []CareServiceResponse `json:"items"`
	Total int                   `json:"total"`
}

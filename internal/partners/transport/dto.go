package transport

import "github.com/google/uuid"

// CreatePartnerRequest contains data for registering a partner.
type CreatePartnerRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Profession string  `json:"profession" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email,max=200"`
	Phone      string  `json:"phone" validate:"required,max=30"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// UpdatePartnerRequest contains data for updating a partner.
type UpdatePartnerRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Profession *string `json:"profession,omitempty" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// PartnerResponse represents a partner in API responses.
type PartnerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Bio        *string   `json:"bio,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// PublicPartnerResponse is the reduced shape exposed to the booking flow.
// Contact details stay internal.
type PublicPartnerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Bio        *string   `json:"bio,omitempty"`
}

// PartnerListResponse wraps a list of partners.
type PartnerListResponse struct {
	Items []PartnerResponse `json:"items"`
	Total int               `json:"total"`
}

// PublicPartnerListResponse wraps the public partner list.
type PublicPartnerListResponse struct {
	Items []PublicPartnerResponse `json:"items"`
	Total int                     `json:"total"`
}

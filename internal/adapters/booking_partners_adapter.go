package adapters

import (
	"context"

	bookingservice "careportal_backend/internal/booking/service"
	partnerservice "careportal_backend/internal/partners/service"

	"github.com/google/uuid"
)

// BookingPartnersAdapter answers partner bookability questions for the
// booking module.
type BookingPartnersAdapter struct {
	partners *partnerservice.Service
}

// NewBookingPartnersAdapter creates the adapter.
func NewBookingPartnersAdapter(partners *partnerservice.Service) *BookingPartnersAdapter {
	return &BookingPartnersAdapter{partners: partners}
}

// IsBookable reports whether the partner exists and accepts bookings.
func (a *BookingPartnersAdapter) IsBookable(ctx context.Context, id uuid.UUID) (bool, error) {
	return a.partners.IsBookable(ctx, id)
}

// Compile-time check against the booking port.
var _ bookingservice.PartnerDirectory = (*BookingPartnersAdapter)(nil)

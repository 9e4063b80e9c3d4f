// Package adapters contains the anti-corruption layer between modules:
// thin translations from one module's service to another module's port
// interface, wired together in the composition root.
package adapters

import (
	"context"

	bookingservice "careportal_backend/internal/booking/service"
	servicesservice "careportal_backend/internal/services/service"

	"github.com/google/uuid"
)

// BookingCatalogAdapter exposes the care services catalog to the booking
// module through its CatalogReader port.
type BookingCatalogAdapter struct {
	services *servicesservice.Service
}

// NewBookingCatalogAdapter creates the adapter.
func NewBookingCatalogAdapter(services *servicesservice.Service) *BookingCatalogAdapter {
	return &BookingCatalogAdapter{services: services}
}

// GetService resolves a care service for a booking.
func (a *BookingCatalogAdapter) GetService(ctx context.Context, id uuid.UUID) (bookingservice.ServiceInfo, error) {
	cs, err := a.services.GetByID(ctx, id)
	if err != nil {
		return bookingservice.ServiceInfo{}, err
	}

	return bookingservice.ServiceInfo{
		ID:              cs.ID,
		Name:            cs.Name,
		DurationMinutes: cs.DurationMinutes,
		PriceCents:      cs.PriceCents,
		IsActive:        cs.IsActive,
	}, nil
}

// Compile-time check against the booking port.
var _ bookingservice.CatalogReader = (*BookingCatalogAdapter)(nil)

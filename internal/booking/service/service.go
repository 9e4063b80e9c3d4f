package service

import (
	"context"
	"strings"
	"time"

	apptransport "careportal_backend/internal/appointments/transport"
	"careportal_backend/internal/booking/transport"
	"careportal_backend/platform/apperr"
	"careportal_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Booker is the slice of the appointments module the booking flow uses.
type Booker interface {
	Book(ctx context.Context, req apptransport.BookAppointmentRequest) (*apptransport.MutationResponse, error)
	Availability(ctx context.Context, partnerID *uuid.UUID, date string) (*apptransport.DayAvailabilityResponse, error)
	AvailableDates() apptransport.AvailableDatesResponse
}

// ServiceInfo carries the catalog fields a booking needs.
type ServiceInfo struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int64
	IsActive        bool
}

// CatalogReader resolves care services for bookings.
type CatalogReader interface {
	GetService(ctx context.Context, id uuid.UUID) (ServiceInfo, error)
}

// PartnerDirectory answers whether a partner accepts bookings.
type PartnerDirectory interface {
	IsBookable(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service drives the public booking flow: form validation, catalog and
// partner resolution, then the appointment booking itself.
type Service struct {
	booker   Booker
	catalog  CatalogReader
	partners PartnerDirectory
	log      *logger.Logger
}

// New creates a booking service.
func New(booker Booker, catalog CatalogReader, partners PartnerDirectory, log *logger.Logger) *Service {
	return &Service{booker: booker, catalog: catalog, partners: partners, log: log}
}

// Dates returns the dates currently open for booking.
func (s *Service) Dates() apptransport.AvailableDatesResponse {
	return s.booker.AvailableDates()
}

// Slots returns the slot availability for a partner on a date. The public
// flow always books a specific partner, so the filter is never nil here.
func (s *Service) Slots(ctx context.Context, partnerID uuid.UUID, date string) (*apptransport.DayAvailabilityResponse, error) {
	return s.booker.Availability(ctx, &partnerID, date)
}

// Submit validates the booking form and books the appointment. All field
// problems are collected and returned together; the slot itself is not
// re-checked here, so two clients racing for the same slot both succeed
// and the schedule shows both.
func (s *Service) Submit(ctx context.Context, req transport.BookingFormRequest) (*apptransport.MutationResponse, error) {
	if fieldErrs := ValidateForm(time.Now(), req); len(fieldErrs) > 0 {
		return nil, apperr.Validation("validation failed").WithDetails(fieldErrs)
	}

	var (
		bookable bool
		svc      ServiceInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookable, err = s.partners.IsBookable(gctx, *req.PartnerID)
		return err
	})
	g.Go(func() error {
		var err error
		svc, err = s.catalog.GetService(gctx, *req.ServiceID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var refErrs []transport.FieldError
	if !bookable {
		refErrs = append(refErrs, transport.FieldError{Field: "partnerId", Message: "partner is not accepting bookings"})
	}
	if !svc.IsActive {
		refErrs = append(refErrs, transport.FieldError{Field: "serviceId", Message: "service is not available for booking"})
	}
	if len(refErrs) > 0 {
		return nil, apperr.Validation("validation failed").WithDetails(refErrs)
	}

	result, err := s.booker.Book(ctx, apptransport.BookAppointmentRequest{
		PartnerID:       *req.PartnerID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientEmail:     strings.TrimSpace(req.ClientEmail),
		ClientPhone:     req.ClientPhone,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: svc.DurationMinutes,
		PriceCents:      svc.PriceCents,
		Notes:           strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return nil, err
	}

	s.log.BookingEvent("booked", result.Appointment.ID.String(), req.PartnerID.String())
	return result, nil
}

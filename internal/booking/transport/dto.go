package transport

import "github.com/google/uuid"

// BookingFormRequest is the raw public booking form submission. Fields are
// validated by the booking service, which collects every problem instead
// of stopping at the first.
type BookingFormRequest struct {
	PartnerID   *uuid.UUID `json:"partnerId"`
	ServiceID   *uuid.UUID `json:"serviceId"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	ClientPhone string     `json:"clientPhone"`
	Date        string     `json:"date"`
	StartTime   string     `json:"startTime"`
	Notes       string     `json:"notes"`
}

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

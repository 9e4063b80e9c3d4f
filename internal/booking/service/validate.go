package service

import (
	"regexp"
	"strings"
	"time"

	apptservice "careportal_backend/internal/appointments/service"
	"careportal_backend/internal/booking/transport"
)

// Form field formats accepted by the public booking flow. The phone
// pattern matches the national formatted shape clients type, e.g.
// "(11) 91234-5678"; normalization happens elsewhere.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const formDateFormat = "2006-01-02"

// ValidateForm checks every field of a booking submission and returns all
// problems found. An empty slice means the form is valid. A well-formed
// date must also be eligible for booking relative to now: not in the
// past, within the booking horizon, and not a Sunday.
func ValidateForm(now time.Time, req transport.BookingFormRequest) []transport.FieldError {
	var errs []transport.FieldError

	if req.PartnerID == nil {
		errs = append(errs, transport.FieldError{Field: "partnerId", Message: "partner is required"})
	}
	if req.ServiceID == nil {
		errs = append(errs, transport.FieldError{Field: "serviceId", Message: "service is required"})
	}

	if strings.TrimSpace(req.ClientName) == "" {
		errs = append(errs, transport.FieldError{Field: "clientName", Message: "name is required"})
	} else if len(req.ClientName) > 100 {
		errs = append(errs, transport.FieldError{Field: "clientName", Message: "name must be at most 100 characters"})
	}

	if strings.TrimSpace(req.ClientEmail) == "" {
		errs = append(errs, transport.FieldError{Field: "clientEmail", Message: "email is required"})
	} else if !emailPattern.MatchString(req.ClientEmail) {
		errs = append(errs, transport.FieldError{Field: "clientEmail", Message: "email is invalid"})
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		errs = append(errs, transport.FieldError{Field: "clientPhone", Message: "phone is required"})
	} else if !phonePattern.MatchString(req.ClientPhone) {
		errs = append(errs, transport.FieldError{Field: "clientPhone", Message: "phone must match (XX) XXXXX-XXXX"})
	}

	if req.Date == "" {
		errs = append(errs, transport.FieldError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse(formDateFormat, req.Date); err != nil {
		errs = append(errs, transport.FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else if !apptservice.DateBookable(now, req.Date) {
		errs = append(errs, transport.FieldError{Field: "date", Message: "date is not available for booking"})
	}

	if req.StartTime == "" {
		errs = append(errs, transport.FieldError{Field: "startTime", Message: "start time is required"})
	} else if !timePattern.MatchString(req.StartTime) {
		errs = append(errs, transport.FieldError{Field: "startTime", Message: "start time must be HH:MM"})
	}

	if len(req.Notes) > 500 {
		errs = append(errs, transport.FieldError{Field: "notes", Message: "notes must be at most 500 characters"})
	}

	return errs
}

package service

import (
	"strings"
	"time"

	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/transport"

	"github.com/google/uuid"
)

// FilterView narrows the collection to the requested date window. Views are
// evaluated against now in its own location:
//
//   - today: appointments dated today
//   - week: the calendar week containing today, starting on Sunday
//   - month: the calendar month containing today
//   - all (or empty): no filtering
func FilterView(appts []repository.Appointment, view transport.AppointmentView, now time.Time) []repository.Appointment {
	if view == transport.ViewAll || view == "" {
		return appts
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]repository.Appointment, 0, len(appts))
	for _, appt := range appts {
		day, err := time.ParseInLocation(dateFormat, appt.Date, now.Location())
		if err != nil {
			continue
		}

		switch view {
		case transport.ViewToday:
			if day.Equal(today) {
				out = append(out, appt)
			}
		case transport.ViewWeek:
			weekStart := today.AddDate(0, 0, -int(today.Weekday()))
			weekEnd := weekStart.AddDate(0, 0, 7)
			if !day.Before(weekStart) && day.Before(weekEnd) {
				out = append(out, appt)
			}
		case transport.ViewMonth:
			if day.Year() == today.Year() && day.Month() == today.Month() {
				out = append(out, appt)
			}
		}
	}
	return out
}

// FilterStatus keeps appointments in the given status. An empty status or
// "all" matches everything.
func FilterStatus(appts []repository.Appointment, status transport.AppointmentStatus) []repository.Appointment {
	if status == "" || status == "all" {
		return appts
	}

	out := make([]repository.Appointment, 0, len(appts))
	for _, appt := range appts {
		if transport.AppointmentStatus(appt.Status) == status {
			out = append(out, appt)
		}
	}
	return out
}

// FilterService keeps appointments for the given care service. A nil UUID
// matches everything.
func FilterService(appts []repository.Appointment, serviceID uuid.UUID) []repository.Appointment {
	if serviceID == uuid.Nil {
		return appts
	}

	out := make([]repository.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.ServiceID == serviceID {
			out = append(out, appt)
		}
	}
	return out
}

// FilterSearch keeps appointments matching the search term. Client name,
// service name and email match case-insensitively; the phone matches on a
// raw substring so users can paste formatted fragments. An empty term
// matches everything.
func FilterSearch(appts []repository.Appointment, term string) []repository.Appointment {
	term = strings.TrimSpace(term)
	if term == "" {
		return appts
	}
	lower := strings.ToLower(term)

	out := make([]repository.Appointment, 0, len(appts))
	for _, appt := range appts {
		if strings.Contains(strings.ToLower(appt.ClientName), lower) ||
			strings.Contains(strings.ToLower(appt.ServiceName), lower) ||
			strings.Contains(strings.ToLower(appt.ClientEmail), lower) ||
			strings.Contains(appt.ClientPhone, term) {
			out = append(out, appt)
		}
	}
	return out
}

// Stats summarizes the collection: per-status counts over everything, the
// number of appointments dated today, and revenue as the sum of completed
// appointment prices over the trailing seven days (dates after today-7 up
// to and including today).
func Stats(appts []repository.Appointment, now time.Time) transport.StatsResponse {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowStart := today.AddDate(0, 0, -7)

	stats := transport.StatsResponse{Total: len(appts)}
	for _, appt := range appts {
		if day, err := time.ParseInLocation(dateFormat, appt.Date, now.Location()); err == nil && day.Equal(today) {
			stats.Today++
		}

		switch transport.AppointmentStatus(appt.Status) {
		case transport.AppointmentStatusScheduled:
			stats.Scheduled++
		case transport.AppointmentStatusConfirmed:
			stats.Confirmed++
		case transport.AppointmentStatusCompleted:
			stats.Completed++
		case transport.AppointmentStatusCancelled:
			stats.Cancelled++
		case transport.AppointmentStatusNoShow:
			stats.NoShow++
		}

		if transport.AppointmentStatus(appt.Status) != transport.AppointmentStatusCompleted {
			continue
		}
		day, err := time.ParseInLocation(dateFormat, appt.Date, now.Location())
		if err != nil {
			continue
		}
		if day.After(windowStart) && !day.After(today) {
			stats.WeekRevenueCents += appt.PriceCents
		}
	}
	return stats
}

package service

import (
	"fmt"
	"time"

	"careportal_backend/internal/appointments/transport"
)

// Working day and booking window parameters.
const (
	dayStartHour   = 8
	dayEndHour     = 18
	slotMinutes    = 30
	maxAdvanceDays = 30
	minNoticeHours = 24
	dateFormat     = "2006-01-02"
	slotTimeFormat = "15:04"
)

// GenerateDaySlots returns every slot of a working day as HH:MM strings.
// The day runs from dayStartHour inclusive to dayEndHour exclusive in
// slotMinutes steps.
func GenerateDaySlots() []string {
	slots := make([]string, 0, (dayEndHour-dayStartHour)*60/slotMinutes)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// AvailableDates returns the dates currently open for booking: from today
// through maxAdvanceDays ahead, skipping Sundays. Dates are computed in
// now's location.
func AvailableDates(now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dates := make([]string, 0, maxAdvanceDays)
	for i := 0; i <= maxAdvanceDays; i++ {
		day := today.AddDate(0, 0, i)
		if day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, day.Format(dateFormat))
	}
	return dates
}

// DateBookable reports whether a date is inside the booking window: not in
// the past, at most maxAdvanceDays ahead, and not a Sunday.
func DateBookable(now time.Time, date string) bool {
	day, err := time.ParseInLocation(dateFormat, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	if day.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return false
	}
	return day.Weekday() != time.Sunday
}

// DaySlots annotates every slot of the given date with its availability.
// booked holds the start times already taken on that date. A slot that is
// both booked and too soon reports occupied; occupancy wins over notice.
func DaySlots(now time.Time, date string, booked map[string]bool) []transport.SlotResponse {
	times := GenerateDaySlots()
	slots := make([]transport.SlotResponse, 0, len(times))

	for _, t := range times {
		slot := transport.SlotResponse{Time: t, Available: true}

		switch {
		case booked[t]:
			slot.Available = false
			slot.Reason = transport.SlotReasonOccupied
		case !hasMinimumNotice(now, date, t):
			slot.Available = false
			slot.Reason = transport.SlotReasonInsufficientNotice
		}

		slots = append(slots, slot)
	}
	return slots
}

// hasMinimumNotice reports whether the slot starts at least minNoticeHours
// after now, evaluated in now's location.
func hasMinimumNotice(now time.Time, date, startTime string) bool {
	start, err := time.ParseInLocation(dateFormat+" "+slotTimeFormat, date+" "+startTime, now.Location())
	if err != nil {
		return false
	}
	return !start.Before(now.Add(minNoticeHours * time.Hour))
}

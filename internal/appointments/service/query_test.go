package service

import (
	"testing"
	"time"

	"careportal_backend/internal/appointments/repository"
	"careportal_backend/internal/appointments/transport"

	"github.com/google/uuid"
)

func appt(date, status string, priceCents int64) repository.Appointment {
	return repository.Appointment{
		Date:       date,
		Status:     status,
		PriceCents: priceCents,
	}
}

func TestFilterViewToday(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)
	appts := []repository.Appointment{
		appt("2025-05-20", "scheduled", 0),
		appt("2025-05-21", "scheduled", 0),
		appt("2025-05-19", "scheduled", 0),
	}

	got := FilterView(appts, transport.ViewToday, now)
	if len(got) != 1 || got[0].Date != "2025-05-20" {
		t.Fatalf("expected only today's appointment, got %+v", got)
	}
}

func TestFilterViewWeekStartsOnSunday(t *testing.T) {
	// 2025-05-20 is a Tuesday; its week runs Sunday 05-18 through
	// Saturday 05-24.
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)
	appts := []repository.Appointment{
		appt("2025-05-17", "scheduled", 0), // previous Saturday
		appt("2025-05-18", "scheduled", 0), // week start
		appt("2025-05-24", "scheduled", 0), // week end
		appt("2025-05-25", "scheduled", 0), // next Sunday
	}

	got := FilterView(appts, transport.ViewWeek, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments in week, got %d: %+v", len(got), got)
	}
	if got[0].Date != "2025-05-18" || got[1].Date != "2025-05-24" {
		t.Errorf("unexpected week window: %+v", got)
	}
}

func TestFilterViewMonth(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)
	appts := []repository.Appointment{
		appt("2025-05-01", "scheduled", 0),
		appt("2025-05-31", "scheduled", 0),
		appt("2025-04-30", "scheduled", 0),
		appt("2025-06-01", "scheduled", 0),
	}

	got := FilterView(appts, transport.ViewMonth, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments in month, got %d", len(got))
	}
}

func TestFilterViewAllAndEmptyPassThrough(t *testing.T) {
	now := time.Now()
	appts := []repository.Appointment{appt("2001-01-01", "scheduled", 0)}

	if got := FilterView(appts, transport.ViewAll, now); len(got) != 1 {
		t.Errorf("view all should not filter, got %d", len(got))
	}
	if got := FilterView(appts, "", now); len(got) != 1 {
		t.Errorf("empty view should not filter, got %d", len(got))
	}
}

func TestFilterSearchMatchesFields(t *testing.T) {
	appts := []repository.Appointment{
		{ClientName: "Maria Silva", ServiceName: "Fisioterapia", ClientEmail: "maria@example.com", ClientPhone: "(11) 98765-4321"},
		{ClientName: "Joao Santos", ServiceName: "Consulta", ClientEmail: "joao@example.com", ClientPhone: "(21) 3333-4444"},
	}

	cases := []struct {
		name string
		term string
		want int
	}{
		{"empty matches all", "", 2},
		{"name case-insensitive", "maria", 1},
		{"service case-insensitive", "FISIO", 1},
		{"email", "joao@", 1},
		{"phone raw substring", "98765", 1},
		{"phone with formatting", "(11)", 1},
		{"no match", "zzz", 0},
		{"whitespace only matches all", "   ", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterSearch(appts, tc.term); len(got) != tc.want {
				t.Errorf("FilterSearch(%q) returned %d, want %d", tc.term, len(got), tc.want)
			}
		})
	}
}

func TestFilterStatus(t *testing.T) {
	appts := []repository.Appointment{
		appt("2025-05-20", "scheduled", 0),
		appt("2025-05-20", "confirmed", 0),
		appt("2025-05-21", "confirmed", 0),
	}

	got := FilterStatus(appts, transport.AppointmentStatusConfirmed)
	if len(got) != 2 {
		t.Fatalf("expected 2 confirmed appointments, got %d", len(got))
	}
	for _, a := range got {
		if a.Status != "confirmed" {
			t.Errorf("unexpected status %q in filtered result", a.Status)
		}
	}

	if got := FilterStatus(appts, ""); len(got) != 3 {
		t.Errorf("empty status should not filter, got %d", len(got))
	}
}

func TestFilterService(t *testing.T) {
	target := uuid.New()
	appts := []repository.Appointment{
		{ServiceID: target, Date: "2025-05-20", Status: "scheduled"},
		{ServiceID: uuid.New(), Date: "2025-05-20", Status: "scheduled"},
	}

	got := FilterService(appts, target)
	if len(got) != 1 || got[0].ServiceID != target {
		t.Fatalf("expected only matching service, got %+v", got)
	}

	if got := FilterService(appts, uuid.Nil); len(got) != 2 {
		t.Errorf("nil service id should not filter, got %d", len(got))
	}
}

func TestStatsCountsAndRevenueWindow(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	appts := []repository.Appointment{
		appt("2025-05-20", "scheduled", 10000),
		appt("2025-05-20", "confirmed", 10000),
		appt("2025-05-20", "completed", 15000), // today, counts
		appt("2025-05-14", "completed", 20000), // 6 days ago, counts
		appt("2025-05-13", "completed", 40000), // exactly 7 days ago, excluded
		appt("2025-05-21", "completed", 50000), // future date, excluded
		appt("2025-05-20", "cancelled", 99999),
		appt("2025-05-20", "no-show", 0),
	}

	stats := Stats(appts, now)
	if stats.Total != 8 {
		t.Errorf("total = %d, want 8", stats.Total)
	}
	if stats.Scheduled != 1 || stats.Confirmed != 1 || stats.Cancelled != 1 || stats.NoShow != 1 {
		t.Errorf("unexpected status counts: %+v", stats)
	}
	if stats.Completed != 4 {
		t.Errorf("completed = %d, want 4", stats.Completed)
	}
	if stats.Today != 5 {
		t.Errorf("today = %d, want 5", stats.Today)
	}
	if stats.WeekRevenueCents != 35000 {
		t.Errorf("week revenue = %d, want 35000", stats.WeekRevenueCents)
	}
}

func TestStatsWithNoAppointments(t *testing.T) {
	stats := Stats(nil, time.Now())
	if stats.Total != 0 || stats.WeekRevenueCents != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

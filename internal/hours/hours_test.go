// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package hours

import (
	"testing"
	"time"
)

// testSchedule: lunch and dinner service Friday, dinner only Saturday.
func testSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := Parse(map[string][]string{
		"friday":   {"11:00-15:00", "17:00-23:00"},
		"saturday": {"17:00-23:30"},
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return s
}

// The 13th of March 2026 is a Friday.
func friday(hour, min int) time.Time {
	return time.Date(2026, 3, 13, hour, min, 0, 0, time.UTC)
}

func TestStatus_OpenDuringService(t *testing.T) {
	s := testSchedule(t)

	st := s.Status(friday(12, 30))
	if !st.Open {
		t.Fatal("Expected open during lunch service")
	}
	if want := friday(15, 0); !st.ChangesAt.Equal(want) {
		t.Errorf("ChangesAt = %v, want closing time %v", st.ChangesAt, want)
	}
}

func TestStatus_ClosedBetweenServices(t *testing.T) {
	s := testSchedule(t)

	st := s.Status(friday(15, 30))
	if st.Open {
		t.Fatal("Expected closed between services")
	}
	if want := friday(17, 0); !st.ChangesAt.Equal(want) {
		t.Errorf("ChangesAt = %v, want dinner opening %v", st.ChangesAt, want)
	}
}

func TestStatus_BoundariesHalfOpen(t *testing.T) {
	s := testSchedule(t)

	if !s.Status(friday(11, 0)).Open {
		t.Error("Opening minute must count as open")
	}
	if s.Status(friday(15, 0)).Open {
		t.Error("Closing minute must count as closed")
	}
}

func TestStatus_ClosedLateNightFindsNextDay(t *testing.T) {
	s := testSchedule(t)

	st := s.Status(friday(23, 30))
	if st.Open {
		t.Fatal("Expected closed after last service")
	}
	saturdayDinner := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	if !st.ChangesAt.Equal(saturdayDinner) {
		t.Errorf("ChangesAt = %v, want Saturday dinner %v", st.ChangesAt, saturdayDinner)
	}
}

func TestStatus_ClosedDayWrapsWeek(t *testing.T) {
	s := testSchedule(t)

	// Sunday the 15th: nothing until next Friday's lunch.
	sunday := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	st := s.Status(sunday)
	if st.Open {
		t.Fatal("Expected closed on Sunday")
	}
	nextFriday := time.Date(2026, 3, 20, 11, 0, 0, 0, time.UTC)
	if !st.ChangesAt.Equal(nextFriday) {
		t.Errorf("ChangesAt = %v, want next Friday %v", st.ChangesAt, nextFriday)
	}
}

func TestStatus_EmptyScheduleAlwaysClosed(t *testing.T) {
	var s *Schedule
	if st := s.Status(friday(12, 0)); st.Open || !st.ChangesAt.IsZero() {
		t.Errorf("Nil schedule must be closed forever, got %+v", st)
	}

	empty, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if st := empty.Status(friday(12, 0)); st.Open {
		t.Error("Empty schedule must be closed")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string][]string
	}{
		{"unknown weekday", map[string][]string{"freitag": {"11:00-15:00"}}},
		{"missing dash", map[string][]string{"monday": {"11:00"}}},
		{"bad time", map[string][]string{"monday": {"11:00-25:00"}}},
		{"inverted span", map[string][]string{"monday": {"15:00-11:00"}}},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.raw); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

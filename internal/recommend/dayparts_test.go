// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package recommend

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, 3, 14, hour, 30, 0, 0, time.UTC)
}

func TestDaypartOf_Buckets(t *testing.T) {
	tests := []struct {
		hour int
		want Daypart
	}{
		{0, DaypartMorning},
		{6, DaypartMorning},
		{10, DaypartMorning},
		{11, DaypartMidday},
		{13, DaypartMidday},
		{15, DaypartMidday},
		{16, DaypartEvening},
		{18, DaypartEvening},
		{23, DaypartEvening},
	}

	for _, tt := range tests {
		if got := DaypartOf(at(tt.hour)); got != tt.want {
			t.Errorf("DaypartOf(hour %d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestDaypart_String(t *testing.T) {
	if DaypartMorning.String() != "morning" || DaypartMidday.String() != "midday" || DaypartEvening.String() != "evening" {
		t.Error("Unexpected daypart names")
	}
	if Daypart(42).String() != "unknown" {
		t.Error("Out-of-range daypart must stringify as unknown")
	}
}

func TestDaypart_DefaultMultiplierIsOne(t *testing.T) {
	if m := DaypartEvening.categoryMultiplier("beverage"); m != 1 {
		t.Errorf("Unlisted category multiplier = %v, want 1", m)
	}
	if m := DaypartEvening.tagMultiplier("grill"); m != 1 {
		t.Errorf("Unlisted tag multiplier = %v, want 1", m)
	}
}

func TestDaypart_EveningBoostsDinnerCategories(t *testing.T) {
	if m := DaypartEvening.categoryMultiplier("main"); m != 1.15 {
		t.Errorf("Evening main multiplier = %v, want 1.15", m)
	}
	if m := DaypartEvening.categoryMultiplier("soup"); m != 1.1 {
		t.Errorf("Evening soup multiplier = %v, want 1.1", m)
	}
	if m := DaypartEvening.categoryMultiplier("dessert"); m != 1.1 {
		t.Errorf("Evening dessert multiplier = %v, want 1.1", m)
	}
}

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package hours evaluates the restaurant's weekly opening schedule for
// the open/closed banner. The clock is always an explicit parameter;
// nothing in this package reads the wall clock itself.
package hours

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Span is one contiguous open period within a single day, in minutes
// from midnight. Close is exclusive.
type Span struct {
	Open  int
	Close int
}

// Schedule is a weekly opening schedule. The zero value is a schedule
// that is always closed.
type Schedule struct {
	days map[time.Weekday][]Span
}

// Status describes whether the restaurant is open at a point in time.
type Status struct {
	// Open reports whether any span contains the queried time.
	Open bool `json:"open"`

	// ChangesAt is the next transition (opening or closing time), or
	// zero when the schedule is empty.
	ChangesAt time.Time `json:"changesAt,omitempty"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse builds a schedule from a config map of weekday name to spans in
// "HH:MM-HH:MM" form, e.g. {"friday": ["11:00-15:00", "17:00-23:30"]}.
// Spans must lie within one day and close after they open.
func Parse(raw map[string][]string) (*Schedule, error) {
	s := &Schedule{days: make(map[time.Weekday][]Span)}

	for name, spans := range raw {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("hours: unknown weekday %q", name)
		}
		for _, spec := range spans {
			span, err := parseSpan(spec)
			if err != nil {
				return nil, fmt.Errorf("hours: %s: %w", name, err)
			}
			s.days[day] = append(s.days[day], span)
		}
		sort.Slice(s.days[day], func(i, j int) bool {
			return s.days[day][i].Open < s.days[day][j].Open
		})
	}

	return s, nil
}

// parseSpan parses a single "HH:MM-HH:MM" span.
func parseSpan(spec string) (Span, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return Span{}, fmt.Errorf("invalid span %q", spec)
	}
	open, err := parseMinute(parts[0])
	if err != nil {
		return Span{}, fmt.Errorf("invalid span %q: %w", spec, err)
	}
	clos, err := parseMinute(parts[1])
	if err != nil {
		return Span{}, fmt.Errorf("invalid span %q: %w", spec, err)
	}
	if clos <= open {
		return Span{}, fmt.Errorf("span %q closes before it opens", spec)
	}
	return Span{Open: open, Close: clos}, nil
}

// parseMinute parses "HH:MM" into minutes from midnight.
func parseMinute(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Status evaluates the schedule at the given time. For an open
// restaurant ChangesAt is today's closing time; for a closed one it is
// the next opening time within the coming week.
func (s *Schedule) Status(now time.Time) Status {
	if s == nil || len(s.days) == 0 {
		return Status{}
	}

	minute := now.Hour()*60 + now.Minute()
	for _, span := range s.days[now.Weekday()] {
		if minute >= span.Open && minute < span.Close {
			return Status{Open: true, ChangesAt: atMinute(now, 0, span.Close)}
		}
	}

	// Closed: find the next opening, scanning up to a full week.
	for offset := 0; offset < 8; offset++ {
		day := now.AddDate(0, 0, offset).Weekday()
		for _, span := range s.days[day] {
			if offset == 0 && span.Open <= minute {
				continue
			}
			return Status{Open: false, ChangesAt: atMinute(now, offset, span.Open)}
		}
	}

	return Status{}
}

// atMinute returns the time at the given day offset and minute-of-day,
// in now's location.
func atMinute(now time.Time, offset, minute int) time.Time {
	base := now.AddDate(0, 0, offset)
	return time.Date(base.Year(), base.Month(), base.Day(), minute/60, minute%60, 0, 0, now.Location())
}

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package recommend

import "time"

// Daypart is one of the three fixed hour-of-day buckets used to bias
// scoring multiplicatively.
type Daypart int

const (
	// DaypartMorning covers hours before 11:00.
	DaypartMorning Daypart = iota
	// DaypartMidday covers 11:00 up to 16:00.
	DaypartMidday
	// DaypartEvening covers 16:00 onward.
	DaypartEvening
)

// String returns a human-readable daypart name.
func (d Daypart) String() string {
	switch d {
	case DaypartMorning:
		return "morning"
	case DaypartMidday:
		return "midday"
	case DaypartEvening:
		return "evening"
	default:
		return "unknown"
	}
}

// DaypartOf buckets a wall-clock time by hour of day.
func DaypartOf(now time.Time) Daypart {
	switch hour := now.Hour(); {
	case hour < 11:
		return DaypartMorning
	case hour < 16:
		return DaypartMidday
	default:
		return DaypartEvening
	}
}

// daypartBoost holds the per-bucket multiplier tables. A category or tag
// absent from its table multiplies by 1. Tag multipliers apply once per
// matching tag and compound across multiple matches.
type daypartBoost struct {
	categories map[string]float64
	tags       map[string]float64
}

// daypartBoosts is the curated boost schedule. Morning favors breakfast
// fare and hot drinks, midday lighter plates, evening the dinner trio of
// mains, soups, and desserts.
var daypartBoosts = map[Daypart]daypartBoost{
	DaypartMorning: {
		categories: map[string]float64{
			"breakfast": 1.2,
			"beverage":  1.15,
		},
		tags: map[string]float64{
			"tea":    1.1,
			"coffee": 1.1,
			"sweet":  1.05,
		},
	},
	DaypartMidday: {
		categories: map[string]float64{
			"main":      1.1,
			"appetizer": 1.05,
		},
		tags: map[string]float64{
			"cold":  1.05,
			"light": 1.1,
		},
	},
	DaypartEvening: {
		categories: map[string]float64{
			"main":    1.15,
			"soup":    1.1,
			"dessert": 1.1,
		},
		tags: map[string]float64{},
	},
}

// categoryMultiplier returns the boost for a category in this daypart.
func (d Daypart) categoryMultiplier(category string) float64 {
	if m, ok := daypartBoosts[d].categories[category]; ok {
		return m
	}
	return 1
}

// tagMultiplier returns the boost for a single tag in this daypart.
func (d Daypart) tagMultiplier(tag string) float64 {
	if m, ok := daypartBoosts[d].tags[tag]; ok {
		return m
	}
	return 1
}

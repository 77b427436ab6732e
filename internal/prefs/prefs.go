// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package prefs

import "time"

// UserPrefs is the accumulated interaction signal for one visitor.
// It grows with every tracked view and is never explicitly deleted;
// in practice it is bounded by catalog size times tag cardinality.
type UserPrefs struct {
	// LikedTags maps tag to accumulated view count.
	LikedTags map[string]int `json:"likedTags"`

	// LikedCategories maps category ID to accumulated view count.
	LikedCategories map[string]int `json:"likedCategories"`

	// VegPreferred is tri-state: nil means unknown. Once true it stays
	// true; the tracker never resets it.
	VegPreferred *bool `json:"vegPreferred,omitempty"`

	// LastSeen is the time of the most recent tracked view, absent
	// before the first one.
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}

// Default returns the all-empty preference record used when nothing is
// persisted yet, or when the persisted blob cannot be read.
func Default() UserPrefs {
	return UserPrefs{
		LikedTags:       make(map[string]int),
		LikedCategories: make(map[string]int),
	}
}

// normalize fills in nil maps so a record decoded from an old or partial
// blob behaves like the default merged with whatever fields survived.
func (p *UserPrefs) normalize() {
	if p.LikedTags == nil {
		p.LikedTags = make(map[string]int)
	}
	if p.LikedCategories == nil {
		p.LikedCategories = make(map[string]int)
	}
}

// IsVegPreferred reports whether the visitor has shown vegetarian
// affinity. Unknown counts as false.
func (p *UserPrefs) IsVegPreferred() bool {
	return p.VegPreferred != nil && *p.VegPreferred
}

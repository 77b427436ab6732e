// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package filter

import "github.com/sofra-kitchen/sofra/internal/menu"

// SortKey selects the ordering of the visible item list.
type SortKey string

const (
	// SortName orders by English item name using locale-aware collation.
	SortName SortKey = "name"
	// SortPrice orders by ascending price.
	SortPrice SortKey = "price"
	// SortPopularity orders by descending popularity. This is the
	// default and the fallback for unknown sort values.
	SortPopularity SortKey = "popularity"
)

// ParseSortKey maps a wire value to a SortKey. Unknown values fall back
// to SortPopularity rather than erroring; a stale or hand-edited URL must
// never break the page.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortName, SortPrice, SortPopularity:
		return SortKey(s)
	default:
		return SortPopularity
	}
}

// State is the complete filter and sort state for one menu view.
// The zero value is not meaningful; use DefaultState.
type State struct {
	// Search is matched case-insensitively as a substring of the English
	// name, English description, and tags. Empty means no search filter.
	Search string `json:"search"`

	// Category is a category ID, the sentinel "all", or the synthetic
	// "vegetarian" which filters by the vegetarian flag instead of the
	// category field. Unknown values are kept verbatim and simply match
	// nothing (a documented rough edge for stale links).
	Category string `json:"category"`

	// ShowPopular, ShowSeasonal, and ShowVegetarian are independent
	// toggles combined conjunctively with category and search.
	ShowPopular    bool `json:"popular"`
	ShowSeasonal   bool `json:"seasonal"`
	ShowVegetarian bool `json:"vegetarian"`

	// Sort selects the ordering of the surviving items.
	Sort SortKey `json:"sort"`
}

// DefaultState returns the all-sentinel state: no search, the synthetic
// "all" category, no toggles, popularity sort.
func DefaultState() State {
	return State{
		Category: menu.CategoryAll,
		Sort:     SortPopularity,
	}
}

// IsDefault reports whether every field equals its empty sentinel.
func (s State) IsDefault() bool {
	return s == DefaultState()
}

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package filter

import (
	"net/url"

	"github.com/sofra-kitchen/sofra/internal/menu"
)

// Recognized query string keys. Unrecognized keys are ignored on decode.
const (
	keyCategory   = "category"
	keySearch     = "search"
	keyPopular    = "popular"
	keySeasonal   = "seasonal"
	keyVegetarian = "vegetarian"
	keySort       = "sort"
)

// ParseQuery reconstructs a State from a URL query string. Every absent
// key maps to its empty sentinel; malformed values degrade to defaults
// and never error.
func ParseQuery(q url.Values) State {
	s := DefaultState()

	if v := q.Get(keyCategory); v != "" {
		s.Category = v
	}
	s.Search = q.Get(keySearch)
	s.ShowPopular = q.Get(keyPopular) == "true"
	s.ShowSeasonal = q.Get(keySeasonal) == "true"
	s.ShowVegetarian = q.Get(keyVegetarian) == "true"
	if v := q.Get(keySort); v != "" {
		s.Sort = ParseSortKey(v)
	}

	return s
}

// Query serializes the state to URL query values, omitting every key
// whose value equals its empty sentinel so the URL stays minimal.
// ParseQuery(Query(s)) == s for any State produced by ParseQuery.
func (s State) Query() url.Values {
	q := url.Values{}

	if s.Category != "" && s.Category != menu.CategoryAll {
		q.Set(keyCategory, s.Category)
	}
	if s.Search != "" {
		q.Set(keySearch, s.Search)
	}
	if s.ShowPopular {
		q.Set(keyPopular, "true")
	}
	if s.ShowSeasonal {
		q.Set(keySeasonal, "true")
	}
	if s.ShowVegetarian {
		q.Set(keyVegetarian, "true")
	}
	if s.Sort != "" && s.Sort != SortPopularity {
		q.Set(keySort, string(s.Sort))
	}

	return q
}

// Encode returns the state as an encoded query string without the
// leading "?". The default state encodes to the empty string.
func (s State) Encode() string {
	return s.Query().Encode()
}

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sofra-kitchen/sofra/internal/menu"
)

// Visible derives the ordered subsequence of catalog items matching the
// state. All predicates are conjunctive; evaluation order only affects
// short-circuit cost, never the result set. An empty catalog or a state
// that eliminates every item yields an empty (non-nil) slice.
//
// Visible is a pure function of its inputs and recomputes the full
// filter and sort on every call. The catalog is tens of items, so no
// incremental derivation is needed.
func Visible(c *menu.Catalog, s State) []menu.Item {
	term := strings.ToLower(s.Search)

	out := make([]menu.Item, 0, c.Len())
	for _, it := range c.Items() {
		if !matchesCategory(&it, s.Category) {
			continue
		}
		if term != "" && !matchesSearch(&it, term) {
			continue
		}
		if s.ShowPopular && !it.IsPopular() {
			continue
		}
		if s.ShowSeasonal && !it.Seasonal {
			continue
		}
		if s.ShowVegetarian && !it.Vegetarian {
			continue
		}
		out = append(out, it)
	}

	sortItems(out, s.Sort)
	return out
}

// matchesCategory applies the category predicate. The synthetic
// "vegetarian" category filters by the boolean flag; an unknown category
// ID matches nothing unless it coincides with a real one.
func matchesCategory(it *menu.Item, category string) bool {
	switch category {
	case "", menu.CategoryAll:
		return true
	case menu.CategoryVegetarian:
		return it.Vegetarian
	default:
		return it.Category == category
	}
}

// matchesSearch reports whether the lowercased term is a substring of
// the English name, the English description, or any tag. Matching is
// substring-based, not tokenized, and always operates on the English
// fields regardless of display locale.
func matchesSearch(it *menu.Item, term string) bool {
	if strings.Contains(strings.ToLower(it.Name.EN), term) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Description.EN), term) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// sortItems orders items in place by the given key. The sort is stable:
// ties retain original catalog order.
func sortItems(items []menu.Item, key SortKey) {
	switch key {
	case SortName:
		// Collators are not safe for concurrent use, so one is built
		// per call rather than shared.
		coll := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return coll.CompareString(items[i].Name.EN, items[j].Name.EN) < 0
		})
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	default: // SortPopularity and the zero value
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Popularity > items[j].Popularity
		})
	}
}

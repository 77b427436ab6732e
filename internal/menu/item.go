// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package menu

// LocalizedText is a text pair with the two fixed display locales.
// Search and sorting always operate over the English text; the Kurdish
// text exists for display only. Either text may be empty: only an
// item's English name is mandatory, and that is enforced at load time.
type LocalizedText struct {
	EN string `json:"en"`
	KU string `json:"ku"`
}

// Item is a single menu item. Items are immutable once the catalog is
// loaded; all fields are externally curated.
type Item struct {
	// ID uniquely identifies the item within the catalog and is stable
	// across sessions.
	ID string `json:"id" validate:"required"`

	// Name and Description are localized display texts.
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`

	// Price is a currency-agnostic non-negative magnitude.
	Price float64 `json:"price" validate:"gte=0"`

	// Category references a Category.ID from the same catalog document.
	Category string `json:"category" validate:"required"`

	// Tags are free-form labels. Order is irrelevant and duplicates
	// carry no meaning.
	Tags []string `json:"tags"`

	// SpiceLevel is 0 (none) through 3 (hot).
	SpiceLevel int `json:"spiceLevel" validate:"gte=0,lte=3"`

	// Popularity is an externally curated non-negative score, static
	// per item. Items with popularity >= 8 are considered "popular".
	Popularity float64 `json:"popularity" validate:"gte=0"`

	Seasonal   bool `json:"seasonal"`
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	Halal      bool `json:"halal"`
	Featured   bool `json:"featured"`

	// PrepTime is a display string such as "15-20 min". No arithmetic
	// is ever performed on it.
	PrepTime string `json:"prepTime"`

	// Calories is a non-negative display value.
	Calories int `json:"calories" validate:"gte=0"`
}

// PopularThreshold is the popularity score at or above which an item
// counts as popular for the "popular" filter toggle.
const PopularThreshold = 8.0

// IsPopular reports whether the item passes the popular filter toggle.
func (it *Item) IsPopular() bool {
	return it.Popularity >= PopularThreshold
}

// HasTag reports whether the item carries the given tag exactly.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category is a menu section. The catalog document enumerates the real
// categories; the synthetic "all" category is added by Catalog.Categories
// and never appears in the backing data.
type Category struct {
	ID   string        `json:"id" validate:"required"`
	Name LocalizedText `json:"name"`
}

// CategoryAll is the synthetic category ID meaning "no category filter".
const CategoryAll = "all"

// CategoryVegetarian is the synthetic category ID that filters by the
// vegetarian flag instead of the category field.
const CategoryVegetarian = "vegetarian"

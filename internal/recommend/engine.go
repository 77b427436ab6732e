// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package recommend

import (
	"sort"
	"time"

	"github.com/sofra-kitchen/sofra/internal/menu"
	"github.com/sofra-kitchen/sofra/internal/prefs"
)

// Scoring weights. The additive terms are applied before the daypart
// multiplier, the seasonal bonus after it.
const (
	// categoryWeight scales the visitor's per-category view counter.
	categoryWeight = 0.8
	// tagWeight scales the sum of the visitor's per-tag view counters.
	tagWeight = 0.5
	// veganBonus applies to vegan items for veg-preferring visitors.
	veganBonus = 1.0
	// vegetarianBonus applies to vegetarian (non-vegan) items for
	// veg-preferring visitors. Mutually exclusive with veganBonus.
	vegetarianBonus = 0.6
	// seasonalBonus is the flat post-multiplier bonus for seasonal items.
	seasonalBonus = 0.5
)

// ScoredItem is a catalog item with its recommendation score.
type ScoredItem struct {
	Item  menu.Item `json:"item"`
	Score float64   `json:"score"`
}

// Score computes the recommendation score of one item for the given
// preferences and daypart.
func Score(item *menu.Item, p *prefs.UserPrefs, daypart Daypart) float64 {
	score := item.Popularity

	score += categoryWeight * float64(p.LikedCategories[item.Category])
	for _, tag := range item.Tags {
		score += tagWeight * float64(p.LikedTags[tag])
	}

	if p.IsVegPreferred() {
		switch {
		case item.Vegan:
			score += veganBonus
		case item.Vegetarian:
			score += vegetarianBonus
		}
	}

	score *= daypart.categoryMultiplier(item.Category)
	for _, tag := range item.Tags {
		score *= daypart.tagMultiplier(tag)
	}

	if item.Seasonal {
		score += seasonalBonus
	}

	return score
}

// Recommend returns the top count catalog items ranked by personalized
// score, descending. Ties keep catalog order, which makes the result
// deterministic (the tie order is not a guaranteed contract). A count
// larger than the catalog returns every item; a non-positive count
// returns an empty slice.
//
// Recommend is a pure function of its inputs; the caller supplies the
// clock, which keeps the daypart boost testable.
func Recommend(c *menu.Catalog, p prefs.UserPrefs, now time.Time, count int) []ScoredItem {
	if count <= 0 {
		return []ScoredItem{}
	}

	daypart := DaypartOf(now)
	scored := make([]ScoredItem, 0, c.Len())
	for _, it := range c.Items() {
		scored = append(scored, ScoredItem{
			Item:  it,
			Score: Score(&it, &p, daypart),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if count < len(scored) {
		scored = scored[:count]
	}
	return scored
}

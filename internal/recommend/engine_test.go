// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package recommend

import (
	"math"
	"testing"

	"github.com/sofra-kitchen/sofra/internal/menu"
	"github.com/sofra-kitchen/sofra/internal/prefs"
)

const scoreEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < scoreEps
}

// scenarioCatalog is the five-item catalog from the default-ranking
// scenario: popularity [9, 3, 7, 5, 1] across mixed categories.
func scenarioCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	c, err := menu.Parse([]byte(`{"items": [
		{"id": "chai", "name": {"en": "Black Tea"}, "category": "beverage", "popularity": 9},
		{"id": "dolma", "name": {"en": "Dolma"}, "category": "appetizer", "popularity": 3},
		{"id": "kofta", "name": {"en": "Kofta"}, "category": "main", "popularity": 7},
		{"id": "soup", "name": {"en": "Lentil Soup"}, "category": "soup", "popularity": 5},
		{"id": "halva", "name": {"en": "Halva"}, "category": "dessert", "popularity": 1}
	]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return c
}

func TestRecommend_DefaultRankingAtDinner(t *testing.T) {
	c := scenarioCatalog(t)

	got := Recommend(c, prefs.Default(), at(18), 2)
	if len(got) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(got))
	}

	// The beverage is unboosted at hour 18 and keeps its raw
	// popularity; the main is multiplied by 1.15.
	if got[0].Item.ID != "chai" || !almostEqual(got[0].Score, 9) {
		t.Errorf("Top item = %s (%v), want chai (9)", got[0].Item.ID, got[0].Score)
	}
	if got[1].Item.ID != "kofta" || !almostEqual(got[1].Score, 7*1.15) {
		t.Errorf("Second item = %s (%v), want kofta (8.05)", got[1].Item.ID, got[1].Score)
	}
}

func TestScore_CategoryAndTagAffinity(t *testing.T) {
	item := menu.Item{ID: "kofta", Category: "main", Tags: []string{"lamb", "grill"}, Popularity: 5}
	p := prefs.Default()
	p.LikedCategories["main"] = 3
	p.LikedTags["lamb"] = 2
	p.LikedTags["grill"] = 1

	// Morning has no boosts for this item, so the additive terms are
	// observable directly: 5 + 0.8*3 + 0.5*(2+1) = 8.9.
	if got := Score(&item, &p, DaypartMorning); !almostEqual(got, 8.9) {
		t.Errorf("Score = %v, want 8.9", got)
	}
}

func TestScore_VegBonusMutuallyExclusive(t *testing.T) {
	tru := true
	p := prefs.Default()
	p.VegPreferred = &tru

	vegan := menu.Item{ID: "a", Category: "appetizer", Popularity: 5, Vegetarian: true, Vegan: true}
	vegetarian := menu.Item{ID: "b", Category: "appetizer", Popularity: 5, Vegetarian: true}
	meat := menu.Item{ID: "c", Category: "appetizer", Popularity: 5}

	// Evening has no appetizer boost, so bonuses are observable raw.
	if got := Score(&vegan, &p, DaypartEvening); !almostEqual(got, 6.0) {
		t.Errorf("Vegan score = %v, want 6.0 (vegan bonus only, not additive)", got)
	}
	if got := Score(&vegetarian, &p, DaypartEvening); !almostEqual(got, 5.6) {
		t.Errorf("Vegetarian score = %v, want 5.6", got)
	}
	if got := Score(&meat, &p, DaypartEvening); !almostEqual(got, 5.0) {
		t.Errorf("Non-veg score = %v, want 5.0", got)
	}
}

func TestScore_VegBonusRequiresPreference(t *testing.T) {
	p := prefs.Default()
	vegan := menu.Item{ID: "a", Category: "appetizer", Popularity: 5, Vegan: true}

	if got := Score(&vegan, &p, DaypartEvening); !almostEqual(got, 5.0) {
		t.Errorf("Unknown preference must not add veg bonus, got %v", got)
	}
}

func TestScore_TagMultipliersCompound(t *testing.T) {
	item := menu.Item{ID: "chai", Category: "beverage", Tags: []string{"tea", "sweet"}, Popularity: 4}
	p := prefs.Default()

	// Morning: beverage 1.15, tea 1.1, sweet 1.05, all multiplicative.
	want := 4 * 1.15 * 1.1 * 1.05
	if got := Score(&item, &p, DaypartMorning); !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScore_SeasonalBonusAfterMultiplier(t *testing.T) {
	item := menu.Item{ID: "tashreeb", Category: "main", Popularity: 6, Seasonal: true}
	p := prefs.Default()

	// Evening main: 6*1.15 + 0.5, the flat bonus is not multiplied.
	want := 6*1.15 + 0.5
	if got := Score(&item, &p, DaypartEvening); !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestRecommend_CountClamping(t *testing.T) {
	c := scenarioCatalog(t)
	p := prefs.Default()

	if got := Recommend(c, p, at(12), 100); len(got) != c.Len() {
		t.Errorf("Oversized count must return whole catalog, got %d", len(got))
	}
	if got := Recommend(c, p, at(12), 0); len(got) != 0 {
		t.Errorf("Zero count must return empty, got %d", len(got))
	}
	if got := Recommend(c, p, at(12), -3); len(got) != 0 {
		t.Errorf("Negative count must return empty, got %d", len(got))
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	c, err := menu.Parse([]byte(`{"items": [
		{"id": "first", "name": {"en": "First"}, "category": "beverage", "popularity": 5},
		{"id": "second", "name": {"en": "Second"}, "category": "beverage", "popularity": 5}
	]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := Recommend(c, prefs.Default(), at(18), 2)
	if got[0].Item.ID != "first" || got[1].Item.ID != "second" {
		t.Errorf("Tied items out of catalog order: %s, %s", got[0].Item.ID, got[1].Item.ID)
	}
}

func TestRecommend_PersonalizationReordersRanking(t *testing.T) {
	c := scenarioCatalog(t)

	// Heavy appetizer affinity lifts the low-popularity dolma:
	// 3 + 0.8*10 = 11 beats everything at midday (appetizer 1.05).
	p := prefs.Default()
	p.LikedCategories["appetizer"] = 10

	got := Recommend(c, p, at(12), 1)
	if got[0].Item.ID != "dolma" {
		t.Errorf("Top item = %s, want dolma", got[0].Item.ID)
	}
}

func TestRecommend_Pure(t *testing.T) {
	c := scenarioCatalog(t)
	p := prefs.Default()
	p.LikedTags["lamb"] = 2

	first := Recommend(c, p, at(9), 3)
	second := Recommend(c, p, at(9), 3)
	if len(first) != len(second) {
		t.Fatalf("Repeated calls differ in length")
	}
	for i := range first {
		if first[i].Item.ID != second[i].Item.ID || !almostEqual(first[i].Score, second[i].Score) {
			t.Errorf("Repeated call differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package prefs

import (
	"context"
	"time"

	"github.com/sofra-kitchen/sofra/internal/logging"
	"github.com/sofra-kitchen/sofra/internal/menu"
	"github.com/sofra-kitchen/sofra/internal/metrics"
)

// Tracker records item view events into the preference store.
type Tracker struct {
	store *Store
	now   func() time.Time
}

// NewTracker creates a view tracker. A nil clock defaults to time.Now;
// tests inject a fixed clock.
func NewTracker(store *Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

// TrackView records one view of the item for the visitor: bumps the
// category and tag counters, updates the last-seen timestamp, and sets
// the sticky vegetarian-affinity flag when the item is vegetarian or
// vegan. The updated record is persisted whole.
//
// TrackView is fail-open: persistence failures are logged at debug level
// and swallowed, so tracking degrades to a no-op rather than failing the
// request.
func (t *Tracker) TrackView(ctx context.Context, visitorID string, item *menu.Item) {
	p := t.store.Read(ctx, visitorID)

	seen := t.now()
	p.LastSeen = &seen
	p.LikedCategories[item.Category]++
	for _, tag := range item.Tags {
		p.LikedTags[tag]++
	}

	// Monotonic: a vegetarian or vegan view sets the flag, a non-veg
	// view never clears it.
	if (item.Vegetarian || item.Vegan) && !p.IsVegPreferred() {
		tru := true
		p.VegPreferred = &tru
	}

	if err := t.store.Write(ctx, visitorID, p); err != nil {
		metrics.ViewTrackFailures.Inc()
		logging.Ctx(ctx).Debug().Err(err).Str("item", item.ID).Msg("View tracking degraded to no-op")
	}
}

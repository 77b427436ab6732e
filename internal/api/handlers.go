// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sofra-kitchen/sofra/internal/config"
	"github.com/sofra-kitchen/sofra/internal/filter"
	"github.com/sofra-kitchen/sofra/internal/hours"
	"github.com/sofra-kitchen/sofra/internal/logging"
	"github.com/sofra-kitchen/sofra/internal/menu"
	"github.com/sofra-kitchen/sofra/internal/metrics"
	"github.com/sofra-kitchen/sofra/internal/prefs"
	"github.com/sofra-kitchen/sofra/internal/recommend"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	catalog   *menu.Catalog
	store     *prefs.Store
	tracker   *prefs.Tracker
	schedule  *hours.Schedule
	recommend config.RecommendConfig

	// now is injectable for tests; time-of-day drives both the hours
	// endpoint and the recommendation dayparts.
	now func() time.Time
}

// NewHandler creates a Handler. A nil now defaults to time.Now.
func NewHandler(catalog *menu.Catalog, store *prefs.Store, tracker *prefs.Tracker, schedule *hours.Schedule, rec config.RecommendConfig, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		catalog:   catalog,
		store:     store,
		tracker:   tracker,
		schedule:  schedule,
		recommend: rec,
		now:       now,
	}
}

// menuResponse is the payload of GET /api/v1/menu. Filters echoes the
// state the server actually applied, after fallbacks, so clients can
// reconcile their controls with a hand-edited or stale URL.
type menuResponse struct {
	Items   []menu.Item  `json:"items"`
	Filters filter.State `json:"filters"`
}

// Menu returns the filtered, sorted menu. The query string is parsed
// leniently: unknown keys and malformed values never produce an error,
// they degrade to the default state.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	state := filter.ParseQuery(r.URL.Query())
	items := filter.Visible(h.catalog, state)

	metrics.RecordMenuQuery(string(state.Sort), len(items))

	rw.SuccessWithMeta(menuResponse{Items: items, Filters: state}, &APIMeta{Count: len(items)})
}

// Categories returns the category list, with the synthetic "all" entry
// first in display order.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	NewResponseWriter(w, r).SuccessWithMeta(cats, &APIMeta{Count: len(cats)})
}

// Item returns a single menu item by ID.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	item, err := h.catalog.Item(id)
	if err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			rw.NotFound("Menu item not found: " + id)
			return
		}
		rw.InternalError("Failed to look up menu item")
		return
	}

	rw.Success(item)
}

// TrackView records that the visitor viewed an item. The response is
// 204 for any known item regardless of storage health: preference
// tracking is best-effort and must never surface errors to the menu.
func (h *Handler) TrackView(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	item, err := h.catalog.Item(id)
	if err != nil {
		rw.NotFound("Menu item not found: " + id)
		return
	}

	visitorID := logging.VisitorIDFromContext(r.Context())
	if visitorID != "" {
		h.tracker.TrackView(r.Context(), visitorID, item)
		metrics.ViewsTracked.Inc()
	}

	rw.NoContent()
}

// Recommendations returns the top-scored items for the visitor at the
// current time of day. The count parameter is clamped to the configured
// maximum; anything unparseable falls back to the default.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	count := h.recommend.DefaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			count = n
		}
	}
	if count > h.recommend.MaxCount {
		count = h.recommend.MaxCount
	}

	visitorID := logging.VisitorIDFromContext(r.Context())
	p := h.store.Read(r.Context(), visitorID)

	scored := recommend.Recommend(h.catalog, p, h.now(), count)

	metrics.RecordRecommendation(time.Since(start))

	rw.SuccessWithMeta(scored, &APIMeta{Count: len(scored)})
}

// Hours returns whether the restaurant is currently open and when that
// changes next.
func (h *Handler) Hours(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.schedule.Status(h.now()))
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady reports readiness to serve: the catalog must be loaded
// and non-empty. The preference store is deliberately excluded; the
// service degrades gracefully without it.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.catalog == nil || h.catalog.Len() == 0 {
		rw.ServiceUnavailable("Menu catalog not loaded")
		return
	}

	rw.Success(map[string]string{"status": "ready"})
}

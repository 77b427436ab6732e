// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package prefs accumulates per-visitor interest signal: per-tag and
// per-category view counters, a sticky vegetarian-affinity flag, and the
// last-seen timestamp.
//
// The data is telemetry-like and non-critical, so the whole package is
// fail-open: a corrupt or unreadable record reads as the empty default,
// and persistence failures degrade view tracking to a no-op without ever
// surfacing an error to the request path. Records are read then
// overwritten whole; concurrent requests for the same visitor race
// last-writer-wins, an accepted lost-update anomaly.
package prefs

// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package recommend ranks catalog items for one visitor by blending
// curated popularity, accumulated preference signal, dietary affinity,
// and a time-of-day boost.
//
// Scoring is a pure function of catalog, preferences, clock, and count.
// There is no trained model and no hidden state; with empty preferences
// the ranking degrades gracefully to popularity plus daypart boosts.
package recommend

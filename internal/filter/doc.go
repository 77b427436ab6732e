// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package filter derives the visible, ordered subsequence of the menu
// catalog from a filter state, and codecs that state to and from a URL
// query string.
//
// The query string is the canonical persistence mechanism for filter
// state: there is no separate in-memory source of truth. State is fully
// reconstructible from a query string and fully serializable back to it,
// with empty-sentinel values omitted so URLs stay minimal.
package filter

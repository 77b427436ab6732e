// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

// Package menu defines the menu item domain model and the immutable
// in-memory catalog loaded from a static JSON document at startup.
//
// The catalog is read-only for the lifetime of the process. All browsing,
// filtering, and recommendation features operate over this single
// in-memory snapshot; there is no item-level persistence or mutation.
package menu

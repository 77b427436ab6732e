// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package menu

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// ErrItemNotFound is returned by Catalog.Item for unknown IDs.
var ErrItemNotFound = fmt.Errorf("menu: item not found")

// catalogDocument is the on-disk JSON shape of the catalog.
type catalogDocument struct {
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
}

// Catalog is the immutable, ordered menu catalog for one session.
// A Catalog is safe for concurrent use; it is never mutated after Load.
type Catalog struct {
	items      []Item
	categories []Category
	byID       map[string]int // item ID -> index in items
}

var validate = validator.New()

// Load reads and validates a catalog JSON document from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from a JSON document and enforces the catalog
// invariants: unique item IDs, a non-empty English name per item, valid
// spice levels, non-negative numeric fields. Descriptions and Kurdish
// texts may be absent. An empty document yields a valid empty catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	c := &Catalog{
		items:      doc.Items,
		categories: doc.Categories,
		byID:       make(map[string]int, len(doc.Items)),
	}

	for i := range c.items {
		it := &c.items[i]
		if err := validate.Struct(it); err != nil {
			return nil, fmt.Errorf("item %q: %w", it.ID, err)
		}
		if it.Name.EN == "" {
			return nil, fmt.Errorf("item %q: missing English name", it.ID)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.byID[it.ID] = i
	}

	for i := range c.categories {
		cat := &c.categories[i]
		if err := validate.Struct(cat); err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.ID, err)
		}
		if cat.ID == CategoryAll {
			return nil, fmt.Errorf("category id %q is reserved", CategoryAll)
		}
	}

	return c, nil
}

// Items returns the catalog items in document order. The returned slice
// must not be modified.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item with the given ID, or ErrItemNotFound.
func (c *Catalog) Item(id string) (*Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &c.items[i], nil
}

// Categories returns the category list with the synthetic "all" category
// prepended. The "all" entry is not present in the backing document.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories)+1)
	out = append(out, Category{
		ID:   CategoryAll,
		Name: LocalizedText{EN: "All", KU: "Hemû"},
	})
	out = append(out, c.categories...)
	return out
}

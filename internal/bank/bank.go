package bank

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownItem is returned when an item ID is not in the catalog.
var ErrUnknownItem = errors.New("unknown item")

// catalog holds the item bank with precomputed indices.
type catalog struct {
	items    []Item
	byID     map[string]*Item
	features map[string]Features
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from the seed data.
func buildCatalog(items []Item, features map[string]Features) *catalog {
	ct := &catalog{
		items:    items,
		byID:     make(map[string]*Item, len(items)),
		features: features,
	}
	for i := range ct.items {
		ct.byID[ct.items[i].ID] = &ct.items[i]
	}
	return ct
}

// ItemByID returns an item by ID, or an error if not found.
func ItemByID(id string) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return *it, nil
}

// Items returns all items in catalog order.
func Items() []Item {
	return slices.Clone(c.items)
}

// FeaturesFor returns the schema features for a schema ID. A schema with
// no declared features yields the zero Features value.
func FeaturesFor(schemaID string) Features {
	return c.features[schemaID]
}

// FirstItem returns the catalog's opening item, used to start a session.
func FirstItem() Item {
	return c.items[0]
}

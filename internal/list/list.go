// Package list turns aggregation results into ordered shopping list items
// ready for display or export.
package list

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/grocerapp/grocer/internal/aggregate"
	"github.com/grocerapp/grocer/internal/grocery"
	"github.com/grocerapp/grocer/internal/id"
)

// Item is one shopping list line.
type Item struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Quantity string           `json:"quantity"`
	Unit     string           `json:"unit"`
	Category grocery.Category `json:"category"`
	// SourceIDs cites the recipes that contributed to this line.
	SourceIDs []string `json:"source_ids,omitempty"`
	// Notes carries amounts that could not be merged into Quantity.
	Notes []string `json:"notes,omitempty"`
}

// List is a generated shopping list.
type List struct {
	GeneratedAt time.Time `json:"generated_at"`
	Items       []Item    `json:"items"`
}

// Build converts aggregation entries into a shopping list. Items are
// ordered by aisle (grocery.DisplayOrder) and alphabetically within an
// aisle, so the list reads in the order a store is walked.
func Build(entries map[string]*aggregate.Entry) List {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{
			ID:        id.MustNew("item"),
			Name:      entry.OriginalName,
			Quantity:  entry.Quantity.String(),
			Unit:      entry.Unit,
			Category:  entry.Category,
			SourceIDs: entry.SourceIDs,
			Notes:     entry.Notes,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category.Rank() < items[j].Category.Rank()
		}
		return items[i].Name < items[j].Name
	})

	return List{GeneratedAt: time.Now().UTC(), Items: items}
}

// ByCategory groups items by category, preserving item order. Only
// categories that actually occur are returned, in display order.
func (l List) ByCategory() []CategoryGroup {
	grouped := make(map[grocery.Category][]Item)
	for _, item := range l.Items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	groups := make([]CategoryGroup, 0, len(grouped))
	for _, category := range grocery.DisplayOrder {
		if items, ok := grouped[category]; ok {
			groups = append(groups, CategoryGroup{Category: category, Items: items})
		}
	}
	return groups
}

// CategoryGroup is one aisle's worth of items.
type CategoryGroup struct {
	Category grocery.Category
	Items    []Item
}

// WriteJSON writes the list as indented JSON.
func (l List) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

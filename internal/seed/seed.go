// Package seed provides the initial stock loaded at startup: a JSON seed
// file when one exists, otherwise a built-in default catalog.
package seed

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/house-holder/shopkeeper/internal/core"
)

// Item is one seed record. An explicit ID stocks the item under that id
// (part numbers from an existing catalog); ID 0 lets the store assign the
// next sequential id.
type Item struct {
	ID          uint32 `json:"id,omitempty"`
	Name        string `json:"name"`
	CostCents   uint32 `json:"cost_cents"`
	WeightGrams uint32 `json:"weight_grams"`
	Quantity    uint32 `json:"quantity"`
}

// Load reads a JSON seed file: a top-level array of Items.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}
	return items, nil
}

// Default returns the built-in stock catalog.
func Default() []Item {
	return []Item{
		{ID: 308113, Name: `36" cyl packing kit`, CostCents: 2299, WeightGrams: 81, Quantity: 12},
		{ID: 389120, Name: `36" cylinder housing`, CostCents: 83500, WeightGrams: 12613, Quantity: 8},
		{ID: 210001, Name: `Flat washer (5/16", stainless)`, CostCents: 8, WeightGrams: 2, Quantity: 203},
		{ID: 992871, Name: `Bearing - conical, 0.875"ID`, CostCents: 3895, WeightGrams: 925, Quantity: 2},
	}
}

// Apply stocks every seed item into the store.
func Apply(store *core.Store, items []Item) {
	for _, it := range items {
		if it.ID == 0 {
			store.StockNew(it.Name, core.Cents(it.CostCents), core.Grams(it.WeightGrams), it.Quantity)
			continue
		}
		store.Stock(core.Item{
			ID:     it.ID,
			Name:   it.Name,
			Cost:   core.Cents(it.CostCents),
			Weight: core.Grams(it.WeightGrams),
		}, it.Quantity)
	}
}

// Package engine holds the register-side pricing core: stock reconciliation,
// bundle availability, custom-bundle selection, discount computation, the
// cart itself and order finalization. It is pure in-memory logic; persistence
// and transport live in the controllers.
package engine

import "github.com/vjloable/fredelicacies-pos-sub000/models"

// Catalog is a full-replacement snapshot of inventory. Each load replaces the
// whole view; there is no delta application.
type Catalog struct {
	items map[string]models.Item
}

func NewCatalog(items []models.Item) *Catalog {
	m := make(map[string]models.Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &Catalog{items: m}
}

// Item returns the snapshot entry for id.
func (c *Catalog) Item(id string) (models.Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Stock returns on-hand stock for id. Unknown ids read as zero stock rather
// than erroring, so a deleted item simply becomes unsellable.
func (c *Catalog) Stock(id string) int {
	return c.items[id].Stock
}

// Available is the stock ledger: on-hand stock minus quantities already held
// by plain item lines in the cart, floored at zero. Bundle lines reserve
// stock through bundle availability instead and are not netted here (see
// Availability).
func (c *Catalog) Available(itemID string, cart *Cart) int {
	reserved := 0
	if cart != nil {
		for _, ln := range cart.lines {
			if ln.Kind == LineItem && ln.ID == itemID {
				reserved += ln.Quantity
			}
		}
	}
	avail := c.Stock(itemID) - reserved
	if avail < 0 {
		return 0
	}
	return avail
}

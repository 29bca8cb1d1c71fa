package engine

import "github.com/vjloable/fredelicacies-pos-sub000/models"

// Availability derives how many units of a fixed-recipe bundle can be
// assembled from current stock: the minimum over components of
// floor(stock/required). A bundle with no components is never orderable, and
// a component with a non-positive required quantity blocks the whole bundle.
//
// Availability reads raw snapshot stock. Item lines already in the cart are
// not netted out here; bundles and loose items sharing a component may
// therefore overcommit slightly between them. The commit transaction is the
// backstop that refuses to oversell.
func Availability(b models.Bundle, catalog *Catalog) int {
	if b.IsCustom || len(b.Components) == 0 {
		return 0
	}
	avail := -1
	for _, comp := range b.Components {
		if comp.Quantity <= 0 {
			return 0
		}
		n := catalog.Stock(comp.ItemID) / comp.Quantity
		if avail < 0 || n < avail {
			avail = n
		}
	}
	if avail < 0 {
		return 0
	}
	return avail
}

package engine

import (
	"errors"

	"github.com/google/uuid"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

var ErrCustomTemplate = errors.New("custom bundles must be added through a finalized selection")

type LineKind string

const (
	LineItem   LineKind = "item"
	LineBundle LineKind = "bundle"
)

// Line is one cart entry. A line only exists with a positive quantity;
// reaching zero removes it. OriginalStock is the ceiling observed at add
// time, kept for display; quantity increases always re-check the live
// ceiling instead.
type Line struct {
	ID            string                   `json:"id"`
	Kind          LineKind                 `json:"kind"`
	Name          string                   `json:"name"`
	UnitPrice     float64                  `json:"unit_price"`
	UnitCost      float64                  `json:"unit_cost"`
	Quantity      int                      `json:"quantity"`
	OriginalStock int                      `json:"original_stock"`
	CategoryID    *string                  `json:"category_id,omitempty"` // item lines only
	BundleID      string                   `json:"bundle_id,omitempty"`   // bundle lines: the template id
	Components    []models.BundleComponent `json:"components,omitempty"`  // bundle lines: resolved recipe
}

// Cart owns the register's in-progress order. It is single-register state:
// one goroutine mutates it, so there is no locking.
type Cart struct {
	lines    []*Line
	discount *models.Discount
}

func NewCart() *Cart {
	return &Cart{}
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, ln := range c.lines {
		out[i] = *ln
	}
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) find(id string, kind LineKind) *Line {
	for _, ln := range c.lines {
		if ln.ID == id && ln.Kind == kind {
			return ln
		}
	}
	return nil
}

// AddItem puts one unit of item in the cart, merging with an existing line.
// Returns false when the ledger has no stock left to reserve.
func (c *Cart) AddItem(item models.Item, catalog *Catalog) bool {
	if catalog.Available(item.ID, c) < 1 {
		return false
	}
	if ln := c.find(item.ID, LineItem); ln != nil {
		ln.Quantity++
		return true
	}
	c.lines = append(c.lines, &Line{
		ID:            item.ID,
		Kind:          LineItem,
		Name:          item.Name,
		UnitPrice:     item.Price,
		UnitCost:      item.Cost,
		Quantity:      1,
		OriginalStock: catalog.Stock(item.ID),
		CategoryID:    item.CategoryID,
	})
	return true
}

// AddBundle puts one unit of a fixed-recipe bundle in the cart. Custom
// templates are rejected: their lines are created by AddCustomBundle from a
// finalized Selection. Returns false when availability is exhausted.
func (c *Cart) AddBundle(b models.Bundle, catalog *Catalog) (bool, error) {
	if b.IsCustom {
		return false, ErrCustomTemplate
	}
	avail := Availability(b, catalog)
	if ln := c.find(b.ID, LineBundle); ln != nil {
		if ln.Quantity >= avail {
			return false, nil
		}
		ln.Quantity++
		return true, nil
	}
	if avail < 1 {
		return false, nil
	}
	c.lines = append(c.lines, &Line{
		ID:            b.ID,
		Kind:          LineBundle,
		Name:          b.Name,
		UnitPrice:     b.Price,
		Quantity:      1,
		OriginalStock: avail,
		BundleID:      b.ID,
		Components:    b.Components,
	})
	return true, nil
}

// AddCustomBundle creates a line for a finalized custom-bundle selection.
// Each selection gets its own synthesized line id so two different picks of
// the same template never merge. Returns the new line id.
func (c *Cart) AddCustomBundle(b models.Bundle, components []models.BundleComponent, unitCost float64, catalog *Catalog) string {
	id := b.ID + "#" + uuid.NewString()
	c.lines = append(c.lines, &Line{
		ID:            id,
		Kind:          LineBundle,
		Name:          b.Name,
		UnitPrice:     b.Price,
		UnitCost:      unitCost,
		Quantity:      1,
		OriginalStock: componentCeiling(components, catalog),
		BundleID:      b.ID,
		Components:    components,
	})
	return id
}

// Adjust changes a line quantity by delta. Decreases always apply, removing
// the line at zero. Increases re-check the freshly computed ceiling for the
// line's kind and are a silent no-op past it. Returns whether the cart
// changed.
func (c *Cart) Adjust(lineID string, delta int, catalog *Catalog) bool {
	idx := -1
	for i, ln := range c.lines {
		if ln.ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 || delta == 0 {
		return false
	}
	ln := c.lines[idx]
	newQty := ln.Quantity + delta
	if newQty < 0 {
		newQty = 0
	}
	if delta > 0 {
		var ceiling int
		if ln.Kind == LineItem {
			// Available already nets this line's reservation out of stock.
			ceiling = ln.Quantity + catalog.Available(ln.ID, c)
		} else {
			ceiling = componentCeiling(ln.Components, catalog)
		}
		if newQty > ceiling {
			return false
		}
	}
	if newQty == 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return true
	}
	ln.Quantity = newQty
	return true
}

// componentCeiling is the min-of-ratios availability of a resolved component
// list, used for bundle lines whose definition is already flattened into the
// line.
func componentCeiling(components []models.BundleComponent, catalog *Catalog) int {
	if len(components) == 0 {
		return 0
	}
	ceiling := -1
	for _, comp := range components {
		if comp.Quantity <= 0 {
			return 0
		}
		n := catalog.Stock(comp.ItemID) / comp.Quantity
		if ceiling < 0 || n < ceiling {
			ceiling = n
		}
	}
	if ceiling < 0 {
		return 0
	}
	return ceiling
}

func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, ln := range c.lines {
		total += ln.UnitPrice * float64(ln.Quantity)
	}
	return total
}

// ApplyDiscount replaces any previously applied discount; only one discount
// is ever active on a cart.
func (c *Cart) ApplyDiscount(d models.Discount) {
	d.Code = NormalizeCode(d.Code)
	c.discount = &d
}

func (c *Cart) RemoveDiscount() {
	c.discount = nil
}

func (c *Cart) Discount() *models.Discount {
	if c.discount == nil {
		return nil
	}
	d := *c.discount
	return &d
}

// DiscountAmount evaluates the applied discount against the current subtotal
// and category composition. With no discount applied it is (0, false).
func (c *Cart) DiscountAmount() (float64, bool) {
	if c.discount == nil {
		return 0, false
	}
	return DiscountAmount(*c.discount, c.Subtotal(), c.categorySet())
}

func (c *Cart) categorySet() map[string]bool {
	set := make(map[string]bool)
	for _, ln := range c.lines {
		if ln.Kind == LineItem && ln.CategoryID != nil && *ln.CategoryID != "" {
			set[*ln.CategoryID] = true
		}
	}
	return set
}

func (c *Cart) Total() float64 {
	amount, _ := c.DiscountAmount()
	total := c.Subtotal() - amount
	if total < 0 {
		return 0
	}
	return total
}

// Clear empties the lines and drops the applied discount together; there is
// no state where one is reset and the other is not.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = nil
}

package engine

import (
	"errors"
	"fmt"

	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

var ErrSelectionIncomplete = errors.New("selection does not match the required piece count")

// Selection is an in-progress mix-and-match pick for a custom bundle: exactly
// MaxPieces pieces, each pick capped by that item's snapshot stock. Stock
// moving underneath the selection is only rechecked on the next Increment;
// the commit transaction does the final live-stock check.
type Selection struct {
	bundle models.Bundle
	picks  []pick
}

type pick struct {
	item models.Item
	qty  int
}

func NewSelection(b models.Bundle) (*Selection, error) {
	if !b.IsCustom {
		return nil, fmt.Errorf("bundle %s is not a custom bundle", b.ID)
	}
	if b.MaxPieces <= 0 {
		return nil, fmt.Errorf("custom bundle %s has no piece cap", b.ID)
	}
	return &Selection{bundle: b}, nil
}

func (s *Selection) Bundle() models.Bundle { return s.bundle }

// Count is the total number of picked pieces.
func (s *Selection) Count() int {
	total := 0
	for _, p := range s.picks {
		total += p.qty
	}
	return total
}

// Quantity reports the picked quantity for one item.
func (s *Selection) Quantity(itemID string) int {
	for _, p := range s.picks {
		if p.item.ID == itemID {
			return p.qty
		}
	}
	return 0
}

// Increment adds one piece of item. Saturation (piece cap reached, or the
// item's stock already fully picked) is a silent no-op, mirroring a disabled
// button at the register. Returns whether a piece was added.
func (s *Selection) Increment(item models.Item) bool {
	if s.Count() >= s.bundle.MaxPieces {
		return false
	}
	for i := range s.picks {
		if s.picks[i].item.ID == item.ID {
			if s.picks[i].qty >= item.Stock {
				return false
			}
			s.picks[i].qty++
			return true
		}
	}
	if item.Stock < 1 {
		return false
	}
	s.picks = append(s.picks, pick{item: item, qty: 1})
	return true
}

// Decrement removes one piece of item, dropping the entry at zero.
func (s *Selection) Decrement(itemID string) bool {
	for i := range s.picks {
		if s.picks[i].item.ID == itemID {
			s.picks[i].qty--
			if s.picks[i].qty <= 0 {
				s.picks = append(s.picks[:i], s.picks[i+1:]...)
			}
			return true
		}
	}
	return false
}

// Complete is true only on exact equality: under- and over-selection both
// block confirmation.
func (s *Selection) Complete() bool {
	return s.Count() == s.bundle.MaxPieces
}

// Finalize synthesizes the component list the custom line carries into the
// cart, plus the aggregate unit cost of one bundle.
func (s *Selection) Finalize() ([]models.BundleComponent, float64, error) {
	if !s.Complete() {
		return nil, 0, ErrSelectionIncomplete
	}
	comps := make([]models.BundleComponent, 0, len(s.picks))
	cost := 0.0
	for _, p := range s.picks {
		comps = append(comps, models.BundleComponent{
			BundleID: s.bundle.ID,
			ItemID:   p.item.ID,
			Quantity: p.qty,
			UnitCost: p.item.Cost,
		})
		cost += p.item.Cost * float64(p.qty)
	}
	return comps, cost, nil
}

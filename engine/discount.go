package engine

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

// DiscountAmount computes the deductible amount for a discount against a
// subtotal and the set of category ids present in the cart. The second return
// reports applicability: a category-scoped code whose category is absent from
// the cart yields (0, false) — still "applied" at the register, just worth
// nothing — which lets callers tell that apart from a plain zero subtotal.
//
// Percentage amounts round half-up to 2 decimals. Flat amounts clamp to the
// subtotal so the total can never go negative.
func DiscountAmount(d models.Discount, subtotal float64, categoryIDs map[string]bool) (float64, bool) {
	if d.AppliesTo != nil && *d.AppliesTo != "" && !categoryIDs[*d.AppliesTo] {
		return 0, false
	}
	switch d.Type {
	case models.DiscountTypePercentage:
		amt := decimal.NewFromFloat(subtotal).
			Mul(decimal.NewFromFloat(d.Value)).
			Div(decimal.NewFromInt(100)).
			Round(2)
		f, _ := amt.Float64()
		return f, true
	case models.DiscountTypeFlat:
		if d.Value > subtotal {
			return subtotal, true
		}
		return d.Value, true
	default:
		return 0, false
	}
}

// NormalizeCode upper-cases a discount code for storage and lookup, making
// acceptance case-insensitive exact match.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

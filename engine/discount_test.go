package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

func TestDiscountPercentageRounding(t *testing.T) {
	d := models.Discount{Code: "SAVE10", Type: models.DiscountTypePercentage, Value: 10}

	amount, ok := DiscountAmount(d, 33.33, nil)
	assert.True(t, ok)
	assert.Equal(t, 3.33, amount, "rounds to 2 decimals, not 3.333")
}

func TestDiscountFlatClampsToSubtotal(t *testing.T) {
	d := models.Discount{Code: "BIG", Type: models.DiscountTypeFlat, Value: 500}

	amount, ok := DiscountAmount(d, 100, nil)
	assert.True(t, ok)
	assert.Equal(t, 100.0, amount, "a flat discount never drives the total negative")
}

func TestDiscountCategoryScoping(t *testing.T) {
	drinks := "cat-drinks"
	d := models.Discount{Code: "DRINKS5", Type: models.DiscountTypeFlat, Value: 5, AppliesTo: &drinks}

	amount, ok := DiscountAmount(d, 50, map[string]bool{"cat-pastries": true})
	assert.False(t, ok, "scoped code with no matching category is inapplicable")
	assert.Equal(t, 0.0, amount)

	amount, ok = DiscountAmount(d, 50, map[string]bool{"cat-drinks": true})
	assert.True(t, ok)
	assert.Equal(t, 5.0, amount)
}

func TestDiscountZeroSubtotalStaysApplicable(t *testing.T) {
	d := models.Discount{Code: "SAVE10", Type: models.DiscountTypePercentage, Value: 10}

	amount, ok := DiscountAmount(d, 0, nil)
	assert.True(t, ok, "zero because subtotal is zero, not because the code is inapplicable")
	assert.Equal(t, 0.0, amount)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCode("  save10 "))
}

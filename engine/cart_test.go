package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

func TestAddItemStockCeiling(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 2)})
	cart := NewCart()
	a := mustItem(t, cat, "a")

	require.True(t, cart.AddItem(a, cat))
	require.True(t, cart.AddItem(a, cat))
	assert.False(t, cart.AddItem(a, cat), "third unit exceeds stock of 2")

	lines := cart.Lines()
	require.Len(t, lines, 1, "same item merges into one line")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[0].OriginalStock)
}

func TestAdjustRechecksLiveCeiling(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 5)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))

	assert.True(t, cart.Adjust("a", 4, cat))
	assert.False(t, cart.Adjust("a", 1, cat), "already at the stock ceiling")

	// Restock: increases check the fresh ceiling, not the add-time one.
	restocked := NewCatalog([]models.Item{testItem("a", 10, 4, 8)})
	assert.True(t, cart.Adjust("a", 3, restocked))
	assert.Equal(t, 8, cart.Lines()[0].Quantity)
}

func TestAdjustToZeroRemovesLine(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 5)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))

	assert.True(t, cart.Adjust("a", -1, cat))
	assert.True(t, cart.Empty(), "quantity zero removes the line entirely")
	assert.False(t, cart.Adjust("a", 1, cat), "removed line cannot be adjusted")
}

func TestAddBundleCeilingAndMerge(t *testing.T) {
	cat := NewCatalog([]models.Item{
		testItem("a", 5, 2, 4),
		testItem("b", 3, 1, 2),
	})
	b := models.Bundle{
		ID: "duo", Name: "Duo", Price: 7,
		Components: []models.BundleComponent{
			{ItemID: "a", Quantity: 2},
			{ItemID: "b", Quantity: 1},
		},
	}

	cart := NewCart()
	added, err := cart.AddBundle(b, cat)
	require.NoError(t, err)
	require.True(t, added)
	added, err = cart.AddBundle(b, cat)
	require.NoError(t, err)
	require.True(t, added)

	added, err = cart.AddBundle(b, cat)
	require.NoError(t, err)
	assert.False(t, added, "availability min(4/2, 2/1) = 2 is exhausted")

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddBundleRejectsCustomTemplate(t *testing.T) {
	cat := NewCatalog(nil)
	cart := NewCart()

	_, err := cart.AddBundle(models.Bundle{ID: "pick3", IsCustom: true, MaxPieces: 3}, cat)
	assert.ErrorIs(t, err, ErrCustomTemplate)
}

func TestCustomBundleLinesNeverMerge(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("donut", 3, 1, 10)})
	b := customBundle(2)
	comps := []models.BundleComponent{{BundleID: b.ID, ItemID: "donut", Quantity: 2, UnitCost: 1}}

	cart := NewCart()
	id1 := cart.AddCustomBundle(b, comps, 2, cat)
	id2 := cart.AddCustomBundle(b, comps, 2, cat)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, cart.Lines(), 2)
}

func TestDiscountReplacesAndIsIdempotent(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 50, 0, 10)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))
	require.True(t, cart.Adjust("a", 1, cat))

	save10 := models.Discount{Code: "save10", Type: models.DiscountTypePercentage, Value: 10}
	cart.ApplyDiscount(save10)
	first, ok := cart.DiscountAmount()
	require.True(t, ok)

	cart.ApplyDiscount(save10)
	second, ok := cart.DiscountAmount()
	require.True(t, ok)
	assert.Equal(t, first, second, "re-applying the same code never compounds")
	assert.Equal(t, "SAVE10", cart.Discount().Code)

	cart.ApplyDiscount(models.Discount{Code: "FLAT5", Type: models.DiscountTypeFlat, Value: 5})
	amount, ok := cart.DiscountAmount()
	require.True(t, ok)
	assert.Equal(t, 5.0, amount, "a new code replaces the previous one")
}

func TestClearAtomicity(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 5)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))
	cart.ApplyDiscount(models.Discount{Code: "SAVE10", Type: models.DiscountTypePercentage, Value: 10})

	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Nil(t, cart.Discount())
}

func TestStockMonotonicity(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 3)})
	cart := NewCart()
	a := mustItem(t, cat, "a")

	// Any interleaving of adds and adjusts keeps reservations within stock.
	ops := []func() bool{
		func() bool { return cart.AddItem(a, cat) },
		func() bool { return cart.Adjust("a", 2, cat) },
		func() bool { return cart.AddItem(a, cat) },
		func() bool { return cart.Adjust("a", -1, cat) },
		func() bool { return cart.Adjust("a", 5, cat) },
		func() bool { return cart.AddItem(a, cat) },
	}
	for _, op := range ops {
		op()
		total := 0
		for _, ln := range cart.Lines() {
			if ln.Kind == LineItem && ln.ID == "a" {
				total += ln.Quantity
			}
		}
		assert.LessOrEqual(t, total, 3)
	}
}

func TestLineMarshalsSnakeCase(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 2)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))

	// Lines go out verbatim in the quote response; field names follow the
	// rest of the API surface.
	b, err := json.Marshal(cart.Lines())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"unit_price"`)
	assert.Contains(t, string(b), `"original_stock"`)
	assert.NotContains(t, string(b), `"UnitPrice"`)
}

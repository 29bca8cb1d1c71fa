package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

var testOpts = FinalizeOptions{
	OrderType:   models.OrderTypeTakeOut,
	CashierID:   "c-1",
	CashierName: "Dana",
	Now:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
}

func TestFinalizeRejectsEmptyCart(t *testing.T) {
	_, _, err := Finalize(NewCart(), testOpts)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestFinalizeRequiresCashier(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 10, 4, 5)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))

	opts := testOpts
	opts.CashierID = ""
	_, _, err := Finalize(cart, opts)
	assert.ErrorIs(t, err, ErrNoCashier)

	// The rejected cart is untouched and can be retried.
	assert.False(t, cart.Empty())
}

func TestFinalizeProfitDefaultsCostToZero(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 50, 0, 5)})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))
	require.True(t, cart.Adjust("a", 1, cat))

	order, _, err := Finalize(cart, testOpts)
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, 100.0, order.Lines[0].Profit, "missing cost reports full price as profit")
	assert.Equal(t, 100.0, order.TotalProfit)
}

func TestFinalizeStockDeltas(t *testing.T) {
	cat := NewCatalog([]models.Item{
		testItem("a", 10, 4, 10),
		testItem("b", 3, 1, 10),
	})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "a"), cat))
	require.True(t, cart.Adjust("a", 2, cat))

	duo := models.Bundle{
		ID: "duo", Name: "Duo", Price: 7,
		Components: []models.BundleComponent{
			{ItemID: "a", Quantity: 1},
			{ItemID: "b", Quantity: 2},
		},
	}
	added, err := cart.AddBundle(duo, cat)
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, cart.Adjust("duo", 1, cat))

	_, deltas, err := Finalize(cart, testOpts)
	require.NoError(t, err)

	assert.Equal(t, []StockDelta{
		{ItemID: "a", Delta: -3},
		{ItemID: "a", Delta: -2},
		{ItemID: "b", Delta: -4},
	}, deltas)
}

func TestFinalizeEndToEnd(t *testing.T) {
	cat := NewCatalog([]models.Item{
		testItem("x", 20, 8, 5),
		testItem("p", 2, 1, 8),
		testItem("q", 3, 1, 8),
	})
	cart := NewCart()
	require.True(t, cart.AddItem(mustItem(t, cat, "x"), cat))
	require.True(t, cart.Adjust("x", 2, cat))

	y := models.Bundle{
		ID: "y", Name: "Bundle Y", Price: 15,
		Components: []models.BundleComponent{
			{ItemID: "p", Quantity: 2},
			{ItemID: "q", Quantity: 1},
		},
	}
	require.Equal(t, 4, Availability(y, cat))
	added, err := cart.AddBundle(y, cat)
	require.NoError(t, err)
	require.True(t, added)

	cart.ApplyDiscount(models.Discount{Code: "SAVE10", Type: models.DiscountTypePercentage, Value: 10})

	order, deltas, err := Finalize(cart, testOpts)
	require.NoError(t, err)

	assert.Equal(t, 75.0, order.Subtotal)
	assert.Equal(t, 7.5, order.DiscountAmount)
	assert.Equal(t, 67.5, order.Total)
	assert.Equal(t, "SAVE10", order.DiscountCode)
	assert.Equal(t, 4, order.ItemCount)
	assert.Equal(t, 2, order.LineCount)
	assert.Equal(t, models.OrderTypeTakeOut, order.OrderType)
	assert.Len(t, deltas, 3)
	assert.NotEmpty(t, order.OrderRef)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

func customBundle(maxPieces int) models.Bundle {
	return models.Bundle{ID: "pickbox", Name: "Pick Box", Price: 30, IsCustom: true, MaxPieces: maxPieces}
}

func TestNewSelectionValidation(t *testing.T) {
	_, err := NewSelection(models.Bundle{ID: "fixed"})
	assert.Error(t, err, "fixed bundles have no selection flow")

	_, err = NewSelection(models.Bundle{ID: "bad", IsCustom: true})
	assert.Error(t, err, "custom bundle needs a positive piece cap")
}

func TestSelectionPieceCap(t *testing.T) {
	sel, err := NewSelection(customBundle(2))
	require.NoError(t, err)

	donut := testItem("donut", 3, 1, 10)
	require.True(t, sel.Increment(donut))
	require.True(t, sel.Increment(donut))
	assert.False(t, sel.Increment(donut), "piece cap saturates silently")
	assert.Equal(t, 2, sel.Count())
	assert.True(t, sel.Complete())
}

func TestSelectionStockCeiling(t *testing.T) {
	sel, err := NewSelection(customBundle(5))
	require.NoError(t, err)

	scarce := testItem("scarce", 3, 1, 1)
	require.True(t, sel.Increment(scarce))
	assert.False(t, sel.Increment(scarce), "per-item stock caps the pick")

	gone := testItem("gone", 3, 1, 0)
	assert.False(t, sel.Increment(gone))
	assert.Equal(t, 1, sel.Count())
}

func TestSelectionDecrementRemovesEntry(t *testing.T) {
	sel, err := NewSelection(customBundle(3))
	require.NoError(t, err)

	donut := testItem("donut", 3, 1, 10)
	require.True(t, sel.Increment(donut))
	assert.Equal(t, 1, sel.Quantity("donut"))

	assert.True(t, sel.Decrement("donut"))
	assert.Equal(t, 0, sel.Quantity("donut"))
	assert.False(t, sel.Decrement("donut"), "nothing left to decrement")
}

func TestSelectionFinalize(t *testing.T) {
	sel, err := NewSelection(customBundle(3))
	require.NoError(t, err)

	donut := testItem("donut", 3, 1.5, 10)
	eclair := testItem("eclair", 4, 2, 10)
	require.True(t, sel.Increment(donut))
	require.True(t, sel.Increment(donut))

	_, _, err = sel.Finalize()
	assert.ErrorIs(t, err, ErrSelectionIncomplete, "2 of 3 picked must not finalize")

	require.True(t, sel.Increment(eclair))
	comps, cost, err := sel.Finalize()
	require.NoError(t, err)

	require.Len(t, comps, 2)
	assert.Equal(t, "donut", comps[0].ItemID)
	assert.Equal(t, 2, comps[0].Quantity)
	assert.Equal(t, "eclair", comps[1].ItemID)
	assert.Equal(t, 1, comps[1].Quantity)
	assert.InDelta(t, 2*1.5+2, cost, 1e-9)
}

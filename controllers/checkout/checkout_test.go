package checkoutcontroller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vjloable/fredelicacies-pos-sub000/engine"
	"github.com/vjloable/fredelicacies-pos-sub000/metrics"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

func TestMapOrderType(t *testing.T) {
	got, err := mapOrderType("dine-in")
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeDineIn, got)

	got, err = mapOrderType(" take out ")
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeTakeOut, got)

	_, err = mapOrderType("drive-thru")
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict,
		statusFor(fmt.Errorf("%w for item Latte", errInsufficientStock)))
	assert.Equal(t, http.StatusBadRequest,
		statusFor(fmt.Errorf("%w: item x", errUnknownRef)))
	assert.Equal(t, http.StatusBadRequest, statusFor(engine.ErrSelectionIncomplete))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("boom")))
}

func TestPublishInventoryLevels(t *testing.T) {
	// Levels collected during a commit only hit the gauge once the
	// transaction is through; an empty map (rolled-back commit) moves nothing.
	metrics.InventoryLevel.WithLabelValues("latte-test").Set(10)

	publishInventoryLevels(nil)
	assert.Equal(t, 10.0,
		testutil.ToFloat64(metrics.InventoryLevel.WithLabelValues("latte-test")))

	publishInventoryLevels(map[string]int{"latte-test": 7})
	assert.Equal(t, 7.0,
		testutil.ToFloat64(metrics.InventoryLevel.WithLabelValues("latte-test")))
}

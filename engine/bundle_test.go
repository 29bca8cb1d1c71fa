package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
)

func TestAvailabilityMinOfRatios(t *testing.T) {
	cat := NewCatalog([]models.Item{
		testItem("a", 5, 2, 10),
		testItem("b", 3, 1, 9),
	})
	b := models.Bundle{
		ID: "snackpack", Name: "Snack Pack", Price: 20,
		Components: []models.BundleComponent{
			{ItemID: "a", Quantity: 2},
			{ItemID: "b", Quantity: 3},
		},
	}

	// min(floor(10/2), floor(9/3)) = min(5, 3)
	assert.Equal(t, 3, Availability(b, cat))
}

func TestAvailabilityEdgeCases(t *testing.T) {
	cat := NewCatalog([]models.Item{testItem("a", 5, 2, 10)})

	empty := models.Bundle{ID: "empty", Price: 5}
	assert.Equal(t, 0, Availability(empty, cat), "no components means never orderable")

	degenerate := models.Bundle{
		ID: "broken", Price: 5,
		Components: []models.BundleComponent{
			{ItemID: "a", Quantity: 0},
		},
	}
	assert.Equal(t, 0, Availability(degenerate, cat), "non-positive required quantity blocks the bundle")

	missing := models.Bundle{
		ID: "ghost", Price: 5,
		Components: []models.BundleComponent{
			{ItemID: "nope", Quantity: 1},
		},
	}
	assert.Equal(t, 0, Availability(missing, cat), "unknown component item reads as zero stock")

	custom := models.Bundle{ID: "pick3", Price: 9, IsCustom: true, MaxPieces: 3}
	assert.Equal(t, 0, Availability(custom, cat), "custom templates have no direct availability")
}

package checkoutcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/engine"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type bundleView struct {
	models.Bundle
	Availability int `json:"availability"`
}

// GET /pos/catalog
//
// Everything the register screen needs in one full-replacement snapshot:
// items, categories, active bundles with live availability, and the store
// settings. The hide-out-of-stock setting only filters this view; pricing
// and ceilings always work from real stock.
func Catalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var setting models.Setting
		if err := db.FirstOrCreate(&setting, models.Setting{ID: 1}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		var items []models.Item
		if err := db.Order("name ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		catalog := engine.NewCatalog(items)

		visible := items
		if setting.HideOutOfStock {
			visible = make([]models.Item, 0, len(items))
			for _, it := range items {
				if it.Stock > 0 {
					visible = append(visible, it)
				}
			}
		}

		var categories []models.Category
		if err := db.Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		var bundles []models.Bundle
		if err := db.Preload("Components").
			Where("status = ?", models.BundleStatusActive).
			Order("name ASC").
			Find(&bundles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bundles"})
			return
		}

		views := make([]bundleView, 0, len(bundles))
		for _, b := range bundles {
			views = append(views, bundleView{
				Bundle:       b,
				Availability: engine.Availability(b, catalog),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      visible,
			"categories": categories,
			"bundles":    views,
			"settings":   setting,
		})
	}
}

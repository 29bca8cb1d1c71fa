package settingscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type SettingsInput struct {
	HideOutOfStock *bool `json:"hide_out_of_stock" binding:"required"`
}

// GET /admin/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var setting models.Setting
		if err := db.FirstOrCreate(&setting, models.Setting{ID: 1}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

// PUT /admin/settings
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var setting models.Setting
		if err := db.FirstOrCreate(&setting, models.Setting{ID: 1}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		setting.HideOutOfStock = *input.HideOutOfStock
		if err := db.Save(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

package bundlecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vjloable/fredelicacies-pos-sub000/engine"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type ComponentInput struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type BundleInput struct {
	Name       string           `json:"name" binding:"required"`
	Price      float64          `json:"price" binding:"required,gt=0"`
	Status     string           `json:"status"`
	IsCustom   bool             `json:"is_custom"`
	MaxPieces  int              `json:"max_pieces"`
	Components []ComponentInput `json:"components" binding:"dive"`
}

func (in *BundleInput) validate(db *gorm.DB) error {
	if in.IsCustom {
		if in.MaxPieces <= 0 {
			return errors.New("custom bundle requires max_pieces > 0")
		}
		if len(in.Components) > 0 {
			return errors.New("custom bundle carries no fixed components")
		}
		return nil
	}
	if len(in.Components) == 0 {
		return errors.New("bundle requires at least one component")
	}
	for _, comp := range in.Components {
		var count int64
		if err := db.Model(&models.Item{}).Where("id = ?", comp.ItemID).Count(&count).Error; err != nil {
			return errors.New("failed to validate components")
		}
		if count == 0 {
			return errors.New("component item does not exist: " + comp.ItemID)
		}
	}
	return nil
}

func (in *BundleInput) status() models.BundleStatus {
	if in.Status == string(models.BundleStatusInactive) {
		return models.BundleStatusInactive
	}
	return models.BundleStatusActive
}

// POST /admin/bundles
func CreateBundle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BundleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(db); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bundle := models.Bundle{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Price:     input.Price,
			Status:    input.status(),
			IsCustom:  input.IsCustom,
			MaxPieces: input.MaxPieces,
		}
		for _, comp := range input.Components {
			bundle.Components = append(bundle.Components, models.BundleComponent{
				ItemID:   comp.ItemID,
				Quantity: comp.Quantity,
			})
		}

		if err := db.Create(&bundle).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bundle"})
			return
		}
		c.JSON(http.StatusCreated, bundle)
	}
}

// PUT /admin/bundles/:id
func UpdateBundle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var bundle models.Bundle
		if err := db.Preload("Components").First(&bundle, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bundle"})
			return
		}

		var input BundleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(db); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bundle_id = ?", bundle.ID).Delete(&models.BundleComponent{}).Error; err != nil {
				return err
			}
			bundle.Name = input.Name
			bundle.Price = input.Price
			bundle.Status = input.status()
			bundle.IsCustom = input.IsCustom
			bundle.MaxPieces = input.MaxPieces
			bundle.Components = nil
			for _, comp := range input.Components {
				bundle.Components = append(bundle.Components, models.BundleComponent{
					BundleID: bundle.ID,
					ItemID:   comp.ItemID,
					Quantity: comp.Quantity,
				})
			}
			return tx.Save(&bundle).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bundle"})
			return
		}
		c.JSON(http.StatusOK, bundle)
	}
}

// GET /admin/bundles
func GetAllBundles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bundles []models.Bundle
		if err := db.Preload("Components").Order("name ASC").Find(&bundles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bundles"})
			return
		}
		c.JSON(http.StatusOK, bundles)
	}
}

// GET /admin/bundles/:id/availability
func GetBundleAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var bundle models.Bundle
		if err := db.Preload("Components").First(&bundle, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bundle"})
			return
		}

		var items []models.Item
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bundle_id":    bundle.ID,
			"availability": engine.Availability(bundle, engine.NewCatalog(items)),
		})
	}
}

// DELETE /admin/bundles/:id
func DeleteBundle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bundle_id = ?", id).Delete(&models.BundleComponent{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Bundle{}, "id = ?", id).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bundle"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bundle deleted"})
	}
}

package discountcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/engine"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type DiscountInput struct {
	Code      string  `json:"code" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=percentage flat"`
	Value     float64 `json:"value" binding:"required,gt=0"`
	AppliesTo *string `json:"applies_to"`
}

func (in *DiscountInput) validate(db *gorm.DB) error {
	if in.Type == string(models.DiscountTypePercentage) && in.Value > 100 {
		return errors.New("percentage value must be between 0 and 100")
	}
	if in.AppliesTo != nil && *in.AppliesTo != "" {
		var count int64
		if err := db.Model(&models.Category{}).Where("id = ?", *in.AppliesTo).Count(&count).Error; err != nil {
			return errors.New("failed to validate category")
		}
		if count == 0 {
			return errors.New("applies_to category does not exist")
		}
	}
	return nil
}

// POST /admin/discounts
func CreateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(db); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actor := c.GetString("cashier_name")
		discount := models.Discount{
			Code:      engine.NormalizeCode(input.Code),
			Type:      models.DiscountType(input.Type),
			Value:     input.Value,
			AppliesTo: input.AppliesTo,
			CreatedBy: actor,
			UpdatedBy: actor,
		}
		if err := db.Create(&discount).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Discount code already exists"})
			return
		}
		c.JSON(http.StatusCreated, discount)
	}
}

// PUT /admin/discounts/:code
func UpdateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := engine.NormalizeCode(c.Param("code"))

		var discount models.Discount
		if err := db.First(&discount, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discount"})
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.validate(db); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if engine.NormalizeCode(input.Code) != code {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code cannot be changed"})
			return
		}

		discount.Type = models.DiscountType(input.Type)
		discount.Value = input.Value
		discount.AppliesTo = input.AppliesTo
		discount.UpdatedBy = c.GetString("cashier_name")
		if err := db.Save(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount"})
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// GET /admin/discounts
func GetAllDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discounts []models.Discount
		if err := db.Order("code ASC").Find(&discounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discounts"})
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

// DELETE /admin/discounts/:code
func DeleteDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := engine.NormalizeCode(c.Param("code"))

		result := db.Delete(&models.Discount{}, "code = ?", code)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discount"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
	}
}

// GET /pos/discounts/suggest?prefix=SA
//
// Autocomplete for the register UI only. Acceptance at checkout stays
// case-insensitive exact match; a prefix hit here buys nothing by itself.
func SuggestDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefix := engine.NormalizeCode(c.Query("prefix"))
		if prefix == "" {
			c.JSON(http.StatusOK, []string{})
			return
		}

		var codes []string
		if err := db.Model(&models.Discount{}).
			Where("code LIKE ?", prefix+"%").
			Order("code ASC").
			Limit(10).
			Pluck("code", &codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
			return
		}
		c.JSON(http.StatusOK, codes)
	}
}

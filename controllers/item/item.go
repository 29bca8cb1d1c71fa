package itemcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vjloable/fredelicacies-pos-sub000/metrics"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type ItemInput struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Cost       float64 `json:"cost" binding:"gte=0"`
	Stock      int     `json:"stock" binding:"gte=0"`
	CategoryID *string `json:"category_id"`
	ImageURL   string  `json:"image_url"`
}

// POST /admin/items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := checkCategory(db, input.CategoryID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.Item{
			ID:         uuid.NewString(),
			Name:       input.Name,
			Price:      input.Price,
			Cost:       input.Cost,
			Stock:      input.Stock,
			CategoryID: input.CategoryID,
			ImageURL:   input.ImageURL,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}

		metrics.InventoryLevel.WithLabelValues(item.ID).Set(float64(item.Stock))
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/items/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var item models.Item
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			return
		}

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := checkCategory(db, input.CategoryID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item.Name = input.Name
		item.Price = input.Price
		item.Cost = input.Cost
		item.Stock = input.Stock
		item.CategoryID = input.CategoryID
		item.ImageURL = input.ImageURL
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		metrics.InventoryLevel.WithLabelValues(item.ID).Set(float64(item.Stock))
		c.JSON(http.StatusOK, item)
	}
}

// PUT /admin/items/:id/stock
func SetStock(db *gorm.DB) gin.HandlerFunc {
	type stockInput struct {
		Stock int `json:"stock" binding:"gte=0"`
	}
	return func(c *gin.Context) {
		id := c.Param("id")

		var input stockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.Item{}).Where("id = ?", id).Update("stock", input.Stock)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		metrics.InventoryLevel.WithLabelValues(id).Set(float64(input.Stock))
		c.JSON(http.StatusOK, gin.H{"id": id, "stock": input.Stock})
	}
}

// GET /admin/items?category_id=&in_stock=1
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Item{}).Order("name ASC")
		if catID := c.Query("category_id"); catID != "" {
			q = q.Where("category_id = ?", catID)
		}
		if inStock, _ := strconv.ParseBool(c.Query("in_stock")); inStock {
			q = q.Where("stock > 0")
		}

		var items []models.Item
		if err := q.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /admin/items/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Item{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

func checkCategory(db *gorm.DB, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
		return errors.New("failed to validate category")
	}
	if count == 0 {
		return errors.New("category does not exist")
	}
	return nil
}

package ordercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Preload("Lines").Order("created_at DESC")
		if cashierID := c.Query("cashier_id"); cashierID != "" {
			q = q.Where("cashier_id = ?", cashierID)
		}
		if orderType := c.Query("order_type"); orderType != "" {
			q = q.Where("order_type = ?", orderType)
		}

		var orders []models.Order
		if err := q.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — accepts the order id or its order_ref
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Lines").
			Where("id = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

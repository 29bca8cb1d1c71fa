package cashiercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type CashierInput struct {
	Name   string `json:"name" binding:"required"`
	PIN    string `json:"pin" binding:"required,min=4"`
	Active *bool  `json:"active"`
}

// POST /admin/cashiers
func CreateCashier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CashierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cashier := models.Cashier{
			ID:     uuid.NewString(),
			Name:   input.Name,
			PIN:    input.PIN,
			Active: true,
		}
		if input.Active != nil {
			cashier.Active = *input.Active
		}
		if err := db.Create(&cashier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cashier"})
			return
		}
		c.JSON(http.StatusCreated, cashier)
	}
}

// GET /admin/cashiers
func GetAllCashiers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cashiers []models.Cashier
		if err := db.Order("name ASC").Find(&cashiers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cashiers"})
			return
		}
		c.JSON(http.StatusOK, cashiers)
	}
}

// PUT /admin/cashiers/:id
func UpdateCashier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var cashier models.Cashier
		if err := db.First(&cashier, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cashier not found"})
			return
		}

		var input CashierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cashier.Name = input.Name
		cashier.PIN = input.PIN
		if input.Active != nil {
			cashier.Active = *input.Active
		}
		if err := db.Save(&cashier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cashier"})
			return
		}
		c.JSON(http.StatusOK, cashier)
	}
}

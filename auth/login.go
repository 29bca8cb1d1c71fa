package auth

import (
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type LoginRequest struct {
	CashierID string `json:"cashier_id" binding:"required"`
	PIN       string `json:"pin" binding:"required"`
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cashier models.Cashier
		if err := db.First(&cashier, "id = ?", req.CashierID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown cashier or wrong PIN"})
			return
		}
		if !cashier.Active || subtle.ConstantTimeCompare([]byte(cashier.PIN), []byte(req.PIN)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown cashier or wrong PIN"})
			return
		}

		token, err := issueCashierToken(cashier)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cashier_id":   cashier.ID,
			"cashier_name": cashier.Name,
			"token":        token,
		})
	}
}

func issueCashierToken(cashier models.Cashier) (string, error) {
	claims := jwt.MapClaims{
		"cashier_id":   cashier.ID,
		"cashier_name": cashier.Name,
		"exp":          time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Cashier PIN login for the register
		authGroup.POST("/login", auth.Login(db))
	}
}

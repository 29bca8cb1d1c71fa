package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vjloable/fredelicacies-pos-sub000/notify"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, POS, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *notify.Hub, webhook *notify.Webhook) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Register routes (JWT-protected)
	SetupPOSRoutes(r, db, hub, webhook)

	// Back-office routes (API-key-protected)
	SetupAdminRoutes(r, db)
}

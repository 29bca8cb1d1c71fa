package routes

import (
	"github.com/gin-gonic/gin"
	checkoutcontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/checkout"
	discountcontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/discount"
	"github.com/vjloable/fredelicacies-pos-sub000/middleware"
	"github.com/vjloable/fredelicacies-pos-sub000/notify"
	"gorm.io/gorm"
)

// SetupPOSRoutes registers the register-facing “/pos/*” endpoints. Requires a
// cashier JWT.
func SetupPOSRoutes(r *gin.Engine, db *gorm.DB, hub *notify.Hub, webhook *notify.Webhook) {
	pos := r.Group("/pos")
	pos.Use(middleware.ValidateToken)
	{
		// Full-replacement catalog snapshot for the register screen
		pos.GET("/catalog", checkoutcontroller.Catalog(db))

		// Price a cart without committing
		pos.POST("/checkout/quote", checkoutcontroller.Quote(db))

		// Commit an order and decrement stock atomically
		pos.POST("/checkout", checkoutcontroller.Checkout(db, hub, webhook))

		// Discount code autocomplete (suggestions only, never acceptance)
		pos.GET("/discounts/suggest", discountcontroller.SuggestDiscounts(db))
	}

	// Websocket feed of committed orders for kitchen/back-office screens.
	// Upgraded outside the JWT group so display boards can subscribe.
	r.GET("/orders/ws", hub.Handler)
}

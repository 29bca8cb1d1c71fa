package routes

import (
	"github.com/gin-gonic/gin"
	bundlecontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/bundle"
	cashiercontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/cashier"
	categorycontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/category"
	discountcontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/discount"
	itemcontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/item"
	ordercontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/order"
	settingscontroller "github.com/vjloable/fredelicacies-pos-sub000/controllers/settings"
	"github.com/vjloable/fredelicacies-pos-sub000/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Inventory Management ───────────
		itemAdmin := adminGroup.Group("/items")
		{
			itemAdmin.POST("", itemcontroller.CreateItem(db))
			itemAdmin.PUT("/:id", itemcontroller.UpdateItem(db))
			itemAdmin.PUT("/:id/stock", itemcontroller.SetStock(db))
			itemAdmin.GET("", itemcontroller.GetItems(db))
			itemAdmin.DELETE("/:id", itemcontroller.DeleteItem(db))
			itemAdmin.GET("/export-excel", itemcontroller.ExportItemsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categorycontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", categorycontroller.UpdateCategory(db))
			categoryAdmin.GET("", categorycontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", categorycontroller.DeleteCategory(db))
		}

		// ─────────── Bundle Management ───────────
		bundleAdmin := adminGroup.Group("/bundles")
		{
			bundleAdmin.POST("", bundlecontroller.CreateBundle(db))
			bundleAdmin.PUT("/:id", bundlecontroller.UpdateBundle(db))
			bundleAdmin.GET("", bundlecontroller.GetAllBundles(db))
			bundleAdmin.GET("/:id/availability", bundlecontroller.GetBundleAvailability(db))
			bundleAdmin.DELETE("/:id", bundlecontroller.DeleteBundle(db))
		}

		// ─────────── Discount Management ───────────
		discountAdmin := adminGroup.Group("/discounts")
		{
			discountAdmin.POST("", discountcontroller.CreateDiscount(db))
			discountAdmin.PUT("/:code", discountcontroller.UpdateDiscount(db))
			discountAdmin.GET("", discountcontroller.GetAllDiscounts(db))
			discountAdmin.DELETE("/:code", discountcontroller.DeleteDiscount(db))
		}

		// ─────────── Cashier Management ───────────
		cashierAdmin := adminGroup.Group("/cashiers")
		{
			cashierAdmin.POST("", cashiercontroller.CreateCashier(db))
			cashierAdmin.GET("", cashiercontroller.GetAllCashiers(db))
			cashierAdmin.PUT("/:id", cashiercontroller.UpdateCashier(db))
		}

		// ─────────── Orders & Reports ───────────
		adminGroup.GET("/orders", ordercontroller.GetAllOrders(db))
		adminGroup.GET("/orders/:orderID", ordercontroller.GetOrderByID(db))
		adminGroup.GET("/reports/sales", ordercontroller.GetSalesReport(db))
		adminGroup.GET("/reports/sales/export-excel", ordercontroller.ExportOrdersToExcel(db))

		// ─────────── Store Settings ───────────
		adminGroup.GET("/settings", settingscontroller.GetSettings(db))
		adminGroup.PUT("/settings", settingscontroller.UpdateSettings(db))
	}
}

package itemcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

// GET /admin/items/export-excel
func ExportItemsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Order("name ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Items")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Price", "Cost", "Stock", "CategoryID", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, it := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(it.ID)
			row.AddCell().SetValue(it.Name)
			row.AddCell().SetValue(it.Price)
			row.AddCell().SetValue(it.Cost)
			row.AddCell().SetValue(it.Stock)
			if it.CategoryID != nil {
				row.AddCell().SetValue(*it.CategoryID)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(it.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(it.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=items.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

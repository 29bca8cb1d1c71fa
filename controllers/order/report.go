package ordercontroller

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/vjloable/fredelicacies-pos-sub000/models"
	"gorm.io/gorm"
)

type salesReport struct {
	From          string             `json:"from"`
	To            string             `json:"to"`
	OrderCount    int                `json:"order_count"`
	ItemCount     int                `json:"item_count"`
	Revenue       float64            `json:"revenue"`
	Profit        float64            `json:"profit"`
	DiscountGiven float64            `json:"discount_given"`
	ByOrderType   map[string]int     `json:"by_order_type"`
	ByDay         map[string]float64 `json:"by_day"`
	TopItems      []topItem          `json:"top_items"`
}

type topItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func ordersInRange(db *gorm.DB, c *gin.Context) ([]models.Order, string, string, error) {
	from := c.DefaultQuery("from", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))
	to := c.DefaultQuery("to", time.Now().Format("2006-01-02"))

	fromT, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, "", "", err
	}
	toT, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, "", "", err
	}

	var orders []models.Order
	err = db.Preload("Lines").
		Where("created_at >= ? AND created_at < ?", fromT, toT.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, from, to, err
}

// GET /admin/reports/sales?from=2024-06-01&to=2024-06-30
func GetSalesReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, from, to, err := ordersInRange(db, c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report range: " + err.Error()})
			return
		}

		report := salesReport{
			From:        from,
			To:          to,
			ByOrderType: make(map[string]int),
			ByDay:       make(map[string]float64),
		}
		itemQty := make(map[string]int)
		for _, o := range orders {
			report.OrderCount++
			report.ItemCount += o.ItemCount
			report.Revenue += o.Total
			report.Profit += o.TotalProfit
			report.DiscountGiven += o.DiscountAmount
			report.ByOrderType[string(o.OrderType)]++
			report.ByDay[o.CreatedAt.Format("2006-01-02")] += o.Total
			for _, ln := range o.Lines {
				itemQty[ln.Name] += ln.Quantity
			}
		}

		for name, qty := range itemQty {
			report.TopItems = append(report.TopItems, topItem{Name: name, Quantity: qty})
		}
		sort.Slice(report.TopItems, func(i, j int) bool {
			if report.TopItems[i].Quantity != report.TopItems[j].Quantity {
				return report.TopItems[i].Quantity > report.TopItems[j].Quantity
			}
			return report.TopItems[i].Name < report.TopItems[j].Name
		})
		if len(report.TopItems) > 10 {
			report.TopItems = report.TopItems[:10]
		}

		c.JSON(http.StatusOK, report)
	}
}

// GET /admin/reports/sales/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, _, _, err := ordersInRange(db, c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report range: " + err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderRef", "CreatedAt", "OrderType", "Cashier", "Lines", "Items",
			"Subtotal", "DiscountCode", "DiscountAmount", "Total", "Profit",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(string(o.OrderType))
			row.AddCell().SetValue(o.CashierName)
			row.AddCell().SetValue(o.LineCount)
			row.AddCell().SetValue(o.ItemCount)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DiscountCode)
			row.AddCell().SetValue(o.DiscountAmount)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.TotalProfit)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

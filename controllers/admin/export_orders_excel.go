package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/neosburritos/burrito-api/store"
)

// GET /admin/orders/export — downloads the full order book as a spreadsheet.
func ExportOrdersToExcel(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.GetAllOrders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "UserID", "OrderDate", "TotalAmount",
			"Currency", "Status", "DeliveryAddress", "Notes", "ItemCount",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.CurrencyCode)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.DeliveryAddress)
			row.AddCell().SetValue(o.Notes)
			row.AddCell().SetValue(o.ItemCount)
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

package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/neosburritos/burrito-api/controllers/admin"
	orderControllers "github.com/neosburritos/burrito-api/controllers/order"
	"github.com/neosburritos/burrito-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" console endpoints, gated by API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// User management
		admin.GET("/users", adminControllers.ListUsers(d.Users))
		admin.PUT("/users/:id/active", adminControllers.SetUserActive(d.Users))
		admin.PUT("/users/:id/role", adminControllers.SetUserRole(d.Users))

		// Product management
		admin.POST("/products", adminControllers.AddProduct(d.Products))
		admin.PUT("/products/:id", adminControllers.UpdateProduct(d.Products))
		admin.PUT("/products/:id/stock", adminControllers.UpdateStock(d.Products))
		admin.PUT("/products/:id/active", adminControllers.SetProductActive(d.Products))

		// Exchange rates
		admin.PUT("/currencies/:code", adminControllers.UpdateCurrencyRate(d.Currencies))

		// Order management
		admin.GET("/orders", orderControllers.GetAllOrders(d.Orders))
		admin.GET("/orders/export", adminControllers.ExportOrdersToExcel(d.Orders))
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatus(d.Orders))
		admin.POST("/orders/:orderID/refund", adminControllers.RefundOrder(d.Orders, d.Payments))

		// System statistics
		admin.GET("/stats", adminControllers.GetSystemStats(d.Stats))
	}
}

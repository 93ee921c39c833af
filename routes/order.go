package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/neosburritos/burrito-api/controllers/order"
	"github.com/neosburritos/burrito-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create an order from the cart and charge it
		orders.POST("/checkout", orderControllers.Checkout(d.Checkout, d.Carts))

		// The authenticated user's order history
		orders.GET("", orderControllers.GetMyOrders(d.Orders))

		// Single order with items
		orders.GET("/:orderID", orderControllers.GetOrderByID(d.Orders))
	}

	// Live order feed for the admin console. Browser websocket handshakes
	// cannot carry an Authorization header, so this sits outside the JWT group.
	r.GET("/ws/orders", orderControllers.OrderFeed)
}

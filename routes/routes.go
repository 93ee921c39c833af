package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/service"
	"github.com/neosburritos/burrito-api/store"
)

// Deps bundles the stores and services the route groups close over.
type Deps struct {
	Users      *store.UserStore
	Products   *store.ProductStore
	Carts      *store.CartStore
	Orders     *store.OrderStore
	Currencies *store.CurrencyStore
	Stats      *store.StatsStore
	Payments   *service.PaymentService
	Checkout   *service.CheckoutService
}

// SetupRoutes is the single entry point that wires up the public, user,
// order and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, d)

	// User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, d)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, d)
}

package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/neosburritos/burrito-api/controllers/cart"
	userControllers "github.com/neosburritos/burrito-api/controllers/user"
	"github.com/neosburritos/burrito-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetProfile(d.Users))    // GET /user
		userGroup.PUT("", userControllers.UpdateProfile(d.Users)) // PUT /user

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(d.Carts))                                     // GET /user/cart
			cartGroup.POST("", cartControllers.AddToCart(d.Carts))                                  // POST /user/cart
			cartGroup.PUT("/:cart_id/quantity", cartControllers.UpdateQuantity(d.Carts))            // PUT /user/cart/:cart_id/quantity
			cartGroup.PUT("/:cart_id/customizations", cartControllers.UpdateCustomization(d.Carts)) // PUT /user/cart/:cart_id/customizations
			cartGroup.DELETE("/:cart_id", cartControllers.RemoveItem(d.Carts))                      // DELETE /user/cart/:cart_id
			cartGroup.DELETE("", cartControllers.ClearCart(d.Carts))                                // DELETE /user/cart
		}
	}
}

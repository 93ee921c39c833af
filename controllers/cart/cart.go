package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/middleware"
	"github.com/neosburritos/burrito-api/store"
)

type AddToCartInput struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	Customizations string `json:"customizations"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type UpdateCustomizationInput struct {
	Customizations string `json:"customizations"`
}

// GET /user/cart?currency=USD
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		currency := c.DefaultQuery("currency", "USD")

		c.JSON(http.StatusOK, gin.H{
			"items": carts.GetCartItems(userID, currency),
			"total": carts.GetCartTotal(userID, currency),
			"count": carts.GetItemCount(userID),
		})
	}
}

// POST /user/cart
func AddToCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !carts.AddToCart(userID, input.ProductID, input.Quantity, input.Customizations) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
	}
}

// PUT /user/cart/:cart_id/quantity
func UpdateQuantity(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !carts.UpdateQuantity(uint(cartID), input.Quantity) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
	}
}

// PUT /user/cart/:cart_id/customizations
func UpdateCustomization(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		var input UpdateCustomizationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !carts.UpdateCustomization(uint(cartID), input.Customizations) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customizations updated"})
	}
}

// DELETE /user/cart/:cart_id
func RemoveItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}

		if !carts.RemoveItem(uint(cartID)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !carts.ClearCart(userID) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

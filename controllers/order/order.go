package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/middleware"
	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/service"
	"github.com/neosburritos/burrito-api/store"
)

type CheckoutInput struct {
	CurrencyCode    string `json:"currency_code" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	PaymentDetails  string `json:"payment_details"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders/checkout
func Checkout(checkout *service.CheckoutService, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The store guards this again inside the transaction; checking here
		// keeps the UI contract of not invoking checkout on an empty cart.
		if carts.GetItemCount(userID) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		result := checkout.PlaceOrder(userID, input.CurrencyCode, input.DeliveryAddress,
			input.Notes, service.PaymentMethod(input.PaymentMethod), input.PaymentDetails)

		if result.OrderID != 0 {
			// A paid order is already confirmed by the time we announce it;
			// only a declined charge leaves it pending.
			status := models.OrderStatusConfirmed
			if !result.Success {
				status = models.OrderStatusPending
			}
			broadcast(OrderEvent{Type: "order_placed", OrderID: result.OrderID,
				Status: string(status)})
		}

		if !result.Success {
			// Payment declined after order creation is a 402, anything
			// earlier is a plain bad request.
			status := http.StatusBadRequest
			if result.PaymentFailed {
				status = http.StatusPaymentRequired
			}
			c.JSON(status, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /orders — the authenticated user's history.
func GetMyOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, orders.GetUserOrders(userID))
	}
}

// GET /orders/:orderID
func GetOrderByID(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order := orders.GetOrderByID(uint(orderID))
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		// Customers may only see their own orders; staff see everything.
		userID, _ := middleware.UserID(c)
		role, _ := c.Get("role")
		if order.UserID != userID && role == string(models.RoleCustomer) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.GetAllOrders())
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatus(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := store.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !orders.UpdateOrderStatus(uint(orderID), status) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		broadcast(OrderEvent{Type: "status_changed", OrderID: uint(orderID), Status: string(status)})
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/service"
	"github.com/neosburritos/burrito-api/store"
)

type SetActiveInput struct {
	Active *bool `json:"active" binding:"required"`
}

type SetRoleInput struct {
	Role string `json:"role" binding:"required"`
}

type AddProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price" binding:"required,gt=0"`
	CurrencyCode string  `json:"currency_code" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Stock        int     `json:"stock" binding:"min=0"`
	Customizable bool    `json:"is_customizable"`
}

type UpdateProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price" binding:"required,gt=0"`
	Customizable bool    `json:"is_customizable"`
}

type UpdateStockInput struct {
	Stock *int `json:"stock" binding:"required"`
}

type UpdateRateInput struct {
	RateToUSD float64 `json:"rate_to_usd" binding:"required,gt=0"`
}

type RefundInput struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// GET /admin/users
func ListUsers(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, users.ListUsers())
	}
}

// PUT /admin/users/:id/active
func SetUserActive(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var input SetActiveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !users.SetActive(uint(id), *input.Active) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

// PUT /admin/users/:id/role
func SetUserRole(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var input SetRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !users.SetRole(uint(id), models.Role(input.Role)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role or user not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
	}
}

// POST /admin/products
func AddProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id, ok := products.AddProduct(models.Product{
			Name:           input.Name,
			Description:    input.Description,
			BasePrice:      input.BasePrice,
			CurrencyCode:   input.CurrencyCode,
			Category:       models.Category(input.Category),
			Stock:          input.Stock,
			IsCustomizable: input.Customizable,
			IsActive:       true,
		})
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product_id": id})
	}
}

// PUT /admin/products/:id
func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !products.UpdateProduct(uint(id), input.Name, input.Description, input.BasePrice, input.Customizable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// PUT /admin/products/:id/stock
func UpdateStock(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input UpdateStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !products.UpdateStock(uint(id), *input.Stock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock or product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
	}
}

// PUT /admin/products/:id/active
func SetProductActive(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input SetActiveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !products.SetActive(uint(id), *input.Active) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// PUT /admin/currencies/:code
func UpdateCurrencyRate(currencies *store.CurrencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateRateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !currencies.UpdateRate(c.Param("code"), input.RateToUSD) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Rate updated"})
	}
}

// GET /admin/stats
func GetSystemStats(stats *store.StatsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.GetSystemStats())
	}
}

// POST /admin/orders/:orderID/refund
func RefundOrder(orders *store.OrderStore, payments *service.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var input RefundInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := orders.GetOrderByID(uint(orderID))
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		result := payments.RefundPayment(input.TransactionID, order.TotalAmount, order.CurrencyCode)
		if !result.Success {
			c.JSON(http.StatusBadGateway, result)
			return
		}

		orders.UpdateOrderStatus(order.ID, models.OrderStatusCancelled)
		c.JSON(http.StatusOK, result)
	}
}

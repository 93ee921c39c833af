package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/store"
)

func parseCategory(raw string) (*models.Category, bool) {
	if raw == "" {
		return nil, true
	}
	switch models.Category(strings.ToUpper(raw)) {
	case models.CategoryBurrito:
		cat := models.CategoryBurrito
		return &cat, true
	case models.CategoryBowl:
		cat := models.CategoryBowl
		return &cat, true
	case models.CategoryDrink:
		cat := models.CategoryDrink
		return &cat, true
	case models.CategorySide:
		cat := models.CategorySide
		return &cat, true
	default:
		return nil, false
	}
}

// GET /products?currency=USD&category=BURRITO
func GetProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		currency := c.DefaultQuery("currency", "USD")
		category, ok := parseCategory(c.Query("category"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		c.JSON(http.StatusOK, products.GetProductsByCurrency(currency, category))
	}
}

// GET /products/:id?currency=USD
func GetProductByID(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product := products.GetByID(uint(id), c.DefaultQuery("currency", "USD"))
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /currencies
func GetCurrencies(currencies *store.CurrencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currencies.Supported())
	}
}

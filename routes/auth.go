package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authControllers "github.com/neosburritos/burrito-api/controllers/auth"
	productControllers "github.com/neosburritos/burrito-api/controllers/product"
)

// SetupAuthRoutes registers the public endpoints: session management plus
// the browsable catalog.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authControllers.Login(d.Users))       // POST /auth/login
		auth.POST("/register", authControllers.Register(d.Users)) // POST /auth/register
	}

	r.GET("/products", productControllers.GetProducts(d.Products))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(d.Products)) // GET /products/:id
	r.GET("/currencies", productControllers.GetCurrencies(d.Currencies))  // GET /currencies
}

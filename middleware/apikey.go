package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neosburritos/burrito-api/config"
)

// ValidateAPIKey gates admin routes behind the X-API-KEY header. An empty
// configured key rejects everything.
func ValidateAPIKey(c *gin.Context) {
	key := config.AdminAPIKey()
	if key == "" || c.GetHeader("X-API-KEY") != key {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}

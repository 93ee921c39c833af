package authControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/neosburritos/burrito-api/config"
	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/store"
)

const tokenTTL = 72 * time.Hour

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// POST /auth/login
func Login(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := users.Authenticate(input.Email, input.Password)
		if !result.Success {
			c.JSON(http.StatusUnauthorized, gin.H{"error": result.Message})
			return
		}

		token, err := issueToken(result.User)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": result.Message,
			"token":   token,
			"user":    result.User,
		})
	}
}

// POST /auth/register
func Register(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Self-registration is always a customer account; staff and admin
		// roles are assigned through the admin console.
		result := users.Register(input.Name, input.Email, input.Password,
			models.RoleCustomer, input.Phone, input.Address)
		if !result.Success {
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": result.Message,
			"user_id": result.UserID,
		})
	}
}

func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

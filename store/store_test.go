package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/neosburritos/burrito-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel tests stay isolated
	// while gorm's pooled connections still see the same data.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Currency{},
	))

	require.NoError(t, db.Create(&[]models.Currency{
		{Code: "USD", Symbol: "$", RateToUSD: 1.0},
		{Code: "PHP", Symbol: "₱", RateToUSD: 56.0},
		{Code: "KRW", Symbol: "₩", RateToUSD: 1300.0},
	}).Error)

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:         name,
		Description:  name + " description",
		BasePrice:    price,
		CurrencyCode: "USD",
		Category:     models.CategoryBurrito,
		Stock:        stock,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/config"
	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/routes"
	"github.com/neosburritos/burrito-api/service"
	"github.com/neosburritos/burrito-api/store"
)

func main() {
	log.Println("starting burrito-api...")

	config.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Currency{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedCurrencies(db)

	rdb := initRedis()

	currencies := store.NewCurrencyStore(db, rdb)
	users := store.NewUserStore(db)
	products := store.NewProductStore(db, currencies)
	carts := store.NewCartStore(db, currencies)
	orders := store.NewOrderStore(db, currencies)
	stats := store.NewStatsStore(db)
	payments := service.NewPaymentService()
	checkout := service.NewCheckoutService(orders, payments)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Users:      users,
		Products:   products,
		Carts:      carts,
		Orders:     orders,
		Currencies: currencies,
		Stats:      stats,
		Payments:   payments,
		Checkout:   checkout,
	})

	port := config.Port()
	log.Printf("server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase opens Postgres when DATABASE_URL is set, otherwise a local
// sqlite file so the app runs with zero setup.
func initDatabase() *gorm.DB {
	if dsn := config.DatabaseURL(); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		log.Println("connected to postgres")
		return db
	}

	db, err := gorm.Open(sqlite.Open(config.SQLitePath()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}
	log.Printf("using sqlite database %s", config.SQLitePath())
	return db
}

// initRedis connects the optional exchange-rate cache. No REDIS_ADDR means
// the currency store reads rates straight from the database.
func initRedis() *redis.Client {
	addr := config.RedisAddr()
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, rate caching disabled: %v", err)
		return nil
	}
	log.Println("connected to redis")
	return rdb
}

// seedCurrencies inserts the supported rate table on first boot. Existing
// rows keep their (possibly admin-edited) rates.
func seedCurrencies(db *gorm.DB) {
	defaults := []models.Currency{
		{Code: "USD", Symbol: "$", RateToUSD: 1.0},
		{Code: "PHP", Symbol: "₱", RateToUSD: 56.0},
		{Code: "KRW", Symbol: "₩", RateToUSD: 1300.0},
	}
	for _, c := range defaults {
		var count int64
		if err := db.Model(&models.Currency{}).Where("code = ?", c.Code).Count(&count).Error; err != nil {
			log.Printf("currency seed check failed: %v", err)
			return
		}
		if count == 0 {
			if err := db.Create(&c).Error; err != nil {
				log.Printf("failed to seed currency %s: %v", c.Code, err)
			}
		}
	}
}

// Package config reads application settings from the environment.
// A .env file is loaded once at startup when present; every accessor
// falls back to a sane default so tests run with no environment at all.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load pulls in a .env file if one exists. Missing files are fine.
func Load() {
	_ = godotenv.Load()
}

// Get returns the env value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetFloat returns the env value parsed as float64, or fallback.
func GetFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// GetDuration returns the env value parsed as a duration, or fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func Port() string { return Get("PORT", "8080") }

// DatabaseURL returns the Postgres DSN. Empty means "use sqlite locally".
func DatabaseURL() string { return os.Getenv("DATABASE_URL") }

// SQLitePath is the local fallback database file.
func SQLitePath() string { return Get("SQLITE_PATH", "burrito.db") }

func JWTSecret() string { return Get("JWT_SECRET", "dev-secret-change-me") }

// AdminAPIKey gates the /admin route group.
func AdminAPIKey() string { return Get("ADMIN_API_KEY", "") }

func RedisAddr() string { return os.Getenv("REDIS_ADDR") }

// PaymentSuccessRate is the simulated gateway's approval probability.
func PaymentSuccessRate() float64 { return GetFloat("PAYMENT_SUCCESS_RATE", 0.90) }

// PaymentMinDelay/PaymentMaxDelay bound the simulated gateway latency.
func PaymentMinDelay() time.Duration { return GetDuration("PAYMENT_MIN_DELAY", time.Second) }
func PaymentMaxDelay() time.Duration { return GetDuration("PAYMENT_MAX_DELAY", 3*time.Second) }

package store

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

const rateCacheTTL = time.Minute

// CurrencyStore serves the exchange-rate table. Every price-bearing read in
// the application converts through here, so rates are optionally cached in
// Redis with a short TTL to avoid one rate query per cart line. A nil Redis
// client means the store reads straight from the database.
type CurrencyStore struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCurrencyStore(db *gorm.DB, rdb *redis.Client) *CurrencyStore {
	return &CurrencyStore{db: db, rdb: rdb}
}

// Convert turns amount from one currency into another through the USD pivot:
// amount times rateToUSD(target) over rateToUSD(source), rounded to 2 decimal
// places. Returns false when either currency is unknown.
func (s *CurrencyStore) Convert(amount float64, from, to string) (float64, bool) {
	if from == to {
		return round2(amount), true
	}
	src, ok := s.rate(from)
	if !ok {
		return 0, false
	}
	dst, ok := s.rate(to)
	if !ok {
		return 0, false
	}
	return round2(amount * (dst.RateToUSD / src.RateToUSD)), true
}

// Symbol returns the display symbol for a currency code, or the code itself
// when unknown.
func (s *CurrencyStore) Symbol(code string) string {
	if c, ok := s.rate(code); ok {
		return c.Symbol
	}
	return code
}

// Supported lists every currency row.
func (s *CurrencyStore) Supported() []models.Currency {
	var currencies []models.Currency
	if err := s.db.Order("code asc").Find(&currencies).Error; err != nil {
		log.Printf("error listing currencies: %v", err)
		return nil
	}
	return currencies
}

// IsSupported reports whether a currency code exists in the rate table.
func (s *CurrencyStore) IsSupported(code string) bool {
	_, ok := s.rate(code)
	return ok
}

// UpdateRate sets a currency's rate-to-USD and drops its cache entry.
func (s *CurrencyStore) UpdateRate(code string, rate float64) bool {
	if rate <= 0 {
		return false
	}
	res := s.db.Model(&models.Currency{}).Where("code = ?", code).Update("rate_to_usd", rate)
	if res.Error != nil {
		log.Printf("error updating rate for %s: %v", code, res.Error)
		return false
	}
	if res.RowsAffected > 0 && s.rdb != nil {
		s.rdb.Del(context.Background(), rateCacheKey(code))
	}
	return res.RowsAffected > 0
}

func rateCacheKey(code string) string { return "currency:" + code }

func (s *CurrencyStore) rate(code string) (models.Currency, bool) {
	var c models.Currency

	if s.rdb != nil {
		if val, err := s.rdb.Get(context.Background(), rateCacheKey(code)).Result(); err == nil {
			if json.Unmarshal([]byte(val), &c) == nil {
				return c, true
			}
		}
	}

	err := s.db.Where("code = ?", code).First(&c).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("error loading currency %s: %v", code, err)
		}
		return models.Currency{}, false
	}

	if s.rdb != nil {
		if data, err := json.Marshal(c); err == nil {
			s.rdb.Set(context.Background(), rateCacheKey(code), data, rateCacheTTL)
		}
	}
	return c, true
}

// round2 rounds half away from zero to 2 decimal places, matching how the
// rate table's prices are quoted.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

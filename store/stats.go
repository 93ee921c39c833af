package store

import (
	"log"

	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

// SystemStats is the admin console's summary view.
type SystemStats struct {
	TotalUsers        int64                        `json:"total_users"`
	TotalProducts     int64                        `json:"total_products"`
	TotalOrders       int64                        `json:"total_orders"`
	OrdersByStatus    map[models.OrderStatus]int64 `json:"orders_by_status"`
	RevenueByCurrency map[string]float64           `json:"revenue_by_currency"`
}

// StatsStore aggregates counts and revenue for the admin console.
type StatsStore struct {
	db *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

// GetSystemStats computes the summary. Cancelled orders are excluded from
// revenue; totals are per currency since sums never mix currencies.
func (s *StatsStore) GetSystemStats() SystemStats {
	stats := SystemStats{
		OrdersByStatus:    map[models.OrderStatus]int64{},
		RevenueByCurrency: map[string]float64{},
	}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		log.Printf("error counting users: %v", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		log.Printf("error counting products: %v", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		log.Printf("error counting orders: %v", err)
	}

	var byStatus []struct {
		Status models.OrderStatus
		N      int64
	}
	err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		log.Printf("error grouping orders by status: %v", err)
	}
	for _, row := range byStatus {
		stats.OrdersByStatus[row.Status] = row.N
	}

	var revenue []struct {
		CurrencyCode string
		Total        float64
	}
	err = s.db.Model(&models.Order{}).
		Select("currency_code, SUM(total_amount) as total").
		Where("status <> ?", models.OrderStatusCancelled).
		Group("currency_code").
		Scan(&revenue).Error
	if err != nil {
		log.Printf("error summing revenue: %v", err)
	}
	for _, row := range revenue {
		stats.RevenueByCurrency[row.CurrencyCode] = round2(row.Total)
	}

	return stats
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neosburritos/burrito-api/models"
)

func TestGetSystemStats(t *testing.T) {
	db := openTestDB(t)
	stats := NewStatsStore(db)

	seedUser(t, db, "one@example.com")
	seedUser(t, db, "two@example.com")
	seedProduct(t, db, "Carnitas Burrito", 8.00, 20)

	orders := []models.Order{
		{UserID: 1, OrderRef: "r1", CurrencyCode: "USD", TotalAmount: 16.00, Status: models.OrderStatusPending},
		{UserID: 1, OrderRef: "r2", CurrencyCode: "USD", TotalAmount: 8.00, Status: models.OrderStatusDelivered},
		{UserID: 2, OrderRef: "r3", CurrencyCode: "PHP", TotalAmount: 448.00, Status: models.OrderStatusDelivered},
		{UserID: 2, OrderRef: "r4", CurrencyCode: "USD", TotalAmount: 99.00, Status: models.OrderStatusCancelled},
	}
	require.NoError(t, db.Create(&orders).Error)

	got := stats.GetSystemStats()
	assert.Equal(t, int64(2), got.TotalUsers)
	assert.Equal(t, int64(1), got.TotalProducts)
	assert.Equal(t, int64(4), got.TotalOrders)
	assert.Equal(t, int64(2), got.OrdersByStatus[models.OrderStatusDelivered])
	assert.Equal(t, int64(1), got.OrdersByStatus[models.OrderStatusCancelled])

	// Cancelled orders never count toward revenue, and currencies do not mix.
	assert.Equal(t, 24.00, got.RevenueByCurrency["USD"])
	assert.Equal(t, 448.00, got.RevenueByCurrency["PHP"])
}

func TestGetSystemStatsEmptyDatabase(t *testing.T) {
	stats := NewStatsStore(openTestDB(t))

	got := stats.GetSystemStats()
	assert.Zero(t, got.TotalOrders)
	assert.Empty(t, got.OrdersByStatus)
	assert.Empty(t, got.RevenueByCurrency)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neosburritos/burrito-api/models"
)

func newOrderStore(t *testing.T) (*OrderStore, *CartStore, *testFixtures) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)
	f := &testFixtures{
		db:      db,
		user:    seedUser(t, db, "orders@example.com"),
		burrito: seedProduct(t, db, "Carnitas Burrito", 8.00, 10),
		drink:   seedProduct(t, db, "Horchata", 3.50, 10),
	}
	return NewOrderStore(db, currencies), NewCartStore(db, currencies), f
}

func TestCreateOrderFromCartHappyPath(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 2, "no onions"))

	result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
	require.True(t, result.Success, result.Message)
	assert.Greater(t, result.OrderID, uint(0))
	assert.Equal(t, 16.00, result.Total)

	order := orders.GetOrderByID(result.OrderID)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "123 Main St", order.DeliveryAddress)
	assert.Equal(t, "USD", order.CurrencyCode)
	assert.Equal(t, "$", order.CurrencySymbol)
	assert.Equal(t, 16.00, order.TotalAmount)
	assert.Equal(t, 1, order.ItemCount)
	assert.NotEmpty(t, order.OrderRef)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, f.burrito.ID, item.ProductID)
	assert.Equal(t, "Carnitas Burrito", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 8.00, item.UnitPrice)
	assert.Equal(t, 16.00, item.TotalPrice)
	assert.Equal(t, "no onions", item.Customizations)

	// The cart was cleared as part of the same unit of work.
	assert.Equal(t, 0, carts.GetItemCount(f.user.ID))

	// Stock was decremented.
	var product models.Product
	require.NoError(t, f.db.First(&product, "id = ?", f.burrito.ID).Error)
	assert.Equal(t, 8, product.Stock)
}

func TestOrderTotalEqualsSumOfItemTotals(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	for _, currency := range []string{"USD", "PHP", "KRW"} {
		require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 3, ""))
		require.True(t, carts.AddToCart(f.user.ID, f.drink.ID, 2, ""))

		result := orders.CreateOrderFromCart(f.user.ID, currency, "123 Main St", "")
		require.True(t, result.Success, result.Message)

		order := orders.GetOrderByID(result.OrderID)
		require.NotNil(t, order)

		var sum float64
		for _, item := range order.Items {
			sum += item.TotalPrice
		}
		assert.InDelta(t, sum, order.TotalAmount, 0.001, "currency %s", currency)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orders, _, f := newOrderStore(t)

	result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
	assert.False(t, result.Success)
	assert.Equal(t, "cart is empty", result.Message)
	assert.Equal(t, uint(0), result.OrderID) // zero sentinel, not null
}

func TestCreateOrderUnsupportedCurrency(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 1, ""))

	result := orders.CreateOrderFromCart(f.user.ID, "EUR", "123 Main St", "")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "unsupported currency")

	// Nothing happened: cart intact, no order rows.
	assert.Equal(t, 1, carts.GetItemCount(f.user.ID))
	var count int64
	require.NoError(t, f.db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	scarce := seedProduct(t, f.db, "Last Bowl", 9.00, 1)
	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 2, ""))
	require.True(t, carts.AddToCart(f.user.ID, scarce.ID, 5, ""))

	result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "insufficient stock for Last Bowl")

	// The whole transaction rolled back: cart intact, burrito stock restored.
	assert.Equal(t, 2, carts.GetItemCount(f.user.ID))
	var burrito models.Product
	require.NoError(t, f.db.First(&burrito, "id = ?", f.burrito.ID).Error)
	assert.Equal(t, 10, burrito.Stock)
	var count int64
	require.NoError(t, f.db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderInPHP(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 1, ""))

	result := orders.CreateOrderFromCart(f.user.ID, "PHP", "Manila", "ring twice")
	require.True(t, result.Success, result.Message)

	order := orders.GetOrderByID(result.OrderID)
	require.NotNil(t, order)
	assert.Equal(t, "PHP", order.CurrencyCode)
	assert.Equal(t, "₱", order.CurrencySymbol)
	assert.InDelta(t, 448.00, order.TotalAmount, 0.01) // 8.00 * 56
	assert.Equal(t, "ring twice", order.Notes)
}

func TestOrderItemsAreFrozenSnapshots(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 2, ""))
	result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
	require.True(t, result.Success)

	// A later price and name change must not leak into the placed order.
	require.NoError(t, f.db.Model(&models.Product{}).Where("id = ?", f.burrito.ID).
		Updates(map[string]interface{}{"base_price": 99.0, "name": "Renamed"}).Error)

	order := orders.GetOrderByID(result.OrderID)
	require.NotNil(t, order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Carnitas Burrito", order.Items[0].ProductName)
	assert.Equal(t, 8.00, order.Items[0].UnitPrice)
	assert.Equal(t, 16.00, order.TotalAmount)
}

func TestGetOrderByIDMissing(t *testing.T) {
	orders, _, _ := newOrderStore(t)
	assert.Nil(t, orders.GetOrderByID(9999))
}

func TestGetUserOrdersNewestFirstWithItemCounts(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	for i := 0; i < 3; i++ {
		require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 1, ""))
		require.True(t, carts.AddToCart(f.user.ID, f.drink.ID, 1, ""))
		result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
		require.True(t, result.Success)
	}

	history := orders.GetUserOrders(f.user.ID)
	require.Len(t, history, 3)
	for _, o := range history {
		assert.Equal(t, 2, o.ItemCount)
		assert.Empty(t, o.Items) // history rows carry counts, not items
	}
	assert.GreaterOrEqual(t, history[0].ID, history[2].ID)

	// Another user's history is empty.
	other := seedUser(t, f.db, "nobody@example.com")
	assert.Empty(t, orders.GetUserOrders(other.ID))
}

func TestUpdateOrderStatusUnconstrained(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 1, ""))
	result := orders.CreateOrderFromCart(f.user.ID, "USD", "123 Main St", "")
	require.True(t, result.Success)

	// Walk forward through the lifecycle...
	for _, status := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
	} {
		require.True(t, orders.UpdateOrderStatus(result.OrderID, status))
		assert.Equal(t, status, orders.GetOrderByID(result.OrderID).Status)
	}

	// ...and jump anywhere: there is no adjacency graph in the data layer.
	require.True(t, orders.UpdateOrderStatus(result.OrderID, models.OrderStatusCancelled))
	require.True(t, orders.UpdateOrderStatus(result.OrderID, models.OrderStatusPending))

	assert.False(t, orders.UpdateOrderStatus(result.OrderID, "shipped")) // not in the closed set
	assert.False(t, orders.UpdateOrderStatus(9999, models.OrderStatusCancelled))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, status)

	status, err = ParseOrderStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, status)

	_, err = ParseOrderStatus("completed")
	assert.Error(t, err)
}

func TestGetAllOrders(t *testing.T) {
	orders, carts, f := newOrderStore(t)

	other := seedUser(t, f.db, "second@example.com")
	require.True(t, carts.AddToCart(f.user.ID, f.burrito.ID, 1, ""))
	require.True(t, orders.CreateOrderFromCart(f.user.ID, "USD", "A", "").Success)
	require.True(t, carts.AddToCart(other.ID, f.drink.ID, 1, ""))
	require.True(t, orders.CreateOrderFromCart(other.ID, "USD", "B", "").Success)

	all := orders.GetAllOrders()
	require.Len(t, all, 2)
}

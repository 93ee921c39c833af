package store

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

const orderHistoryLimit = 50

// OrderResult is the outcome of an order-creation attempt. OrderID is the
// zero sentinel (never a pointer) when Success is false, and Message is
// user-facing text in either direction.
type OrderResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

// OrderStore handles order creation, retrieval and status management.
type OrderStore struct {
	db         *gorm.DB
	currencies *CurrencyStore
}

func NewOrderStore(db *gorm.DB, currencies *CurrencyStore) *OrderStore {
	return &OrderStore{db: db, currencies: currencies}
}

// CreateOrderFromCart snapshots the user's current cart into a new Order plus
// its OrderItems priced in currencyCode, decrements stock, and clears the
// cart — all inside one transaction. The caller sees all-or-nothing: any
// failure rolls everything back and comes out as Success=false with a
// human-readable message.
func (s *OrderStore) CreateOrderFromCart(userID uint, currencyCode, deliveryAddress, notes string) OrderResult {
	if !s.currencies.IsSupported(currencyCode) {
		return OrderResult{Message: "unsupported currency: " + currencyCode}
	}

	var orderID uint
	var total float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id asc").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return errors.New("cart is empty")
		}

		var items []models.OrderItem
		for _, line := range lines {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", line.ProductID)
			}
			if !product.IsActive {
				return errors.New("product no longer available: " + product.Name)
			}

			// Conditional decrement doubles as the stock check, so two
			// concurrent checkouts cannot both take the last burrito.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("insufficient stock for " + product.Name)
			}

			unit, ok := s.currencies.Convert(product.BasePrice, product.CurrencyCode, currencyCode)
			if !ok {
				return errors.New("unsupported currency: " + currencyCode)
			}
			lineTotal := round2(unit * float64(line.Quantity))
			total += lineTotal

			items = append(items, models.OrderItem{
				ProductID:      product.ID,
				ProductName:    product.Name,
				Quantity:       line.Quantity,
				UnitPrice:      unit,
				TotalPrice:     lineTotal,
				Customizations: line.Customizations,
			})
		}
		total = round2(total)

		order := models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           items,
			OrderDate:       time.Now(),
			TotalAmount:     total,
			CurrencyCode:    currencyCode,
			CurrencySymbol:  s.currencies.Symbol(currencyCode),
			Status:          models.OrderStatusPending,
			DeliveryAddress: deliveryAddress,
			Notes:           notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		log.Printf("error creating order for user %d: %v", userID, err)
		return OrderResult{Message: err.Error()}
	}

	return OrderResult{Success: true, Message: "Order placed successfully", OrderID: orderID, Total: total}
}

// GetOrderByID loads an order with its items, or nil when absent.
func (s *OrderStore) GetOrderByID(orderID uint) *models.Order {
	var order models.Order
	err := s.db.Preload("Items").First(&order, "id = ?", orderID).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("error getting order %d: %v", orderID, err)
		}
		return nil
	}
	order.ItemCount = len(order.Items)
	return &order
}

// GetUserOrders returns a user's order history, newest first, capped at 50.
// Items are not loaded; each row carries its item count.
func (s *OrderStore) GetUserOrders(userID uint) []models.Order {
	orders := []models.Order{}
	err := s.db.Where("user_id = ?", userID).
		Order("order_date desc").
		Limit(orderHistoryLimit).
		Find(&orders).Error
	if err != nil {
		log.Printf("error getting orders for user %d: %v", userID, err)
		return []models.Order{}
	}
	s.fillItemCounts(orders)
	return orders
}

// GetAllOrders returns every order, newest first (admin view).
func (s *OrderStore) GetAllOrders() []models.Order {
	orders := []models.Order{}
	if err := s.db.Order("order_date desc").Find(&orders).Error; err != nil {
		log.Printf("error getting all orders: %v", err)
		return []models.Order{}
	}
	s.fillItemCounts(orders)
	return orders
}

// UpdateOrderStatus sets an order to any valid status. There is no adjacency
// graph: the data layer accepts every transition, including back to pending,
// and leaves "are you sure" to the caller.
func (s *OrderStore) UpdateOrderStatus(orderID uint, status models.OrderStatus) bool {
	if _, err := ParseOrderStatus(string(status)); err != nil {
		return false
	}
	res := s.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		log.Printf("error updating order status: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// ParseOrderStatus maps a string onto the closed status set.
func ParseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusPreparing):
		return models.OrderStatusPreparing, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func (s *OrderStore) fillItemCounts(orders []models.Order) {
	if len(orders) == 0 {
		return
	}
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var rows []struct {
		OrderID uint
		N       int
	}
	err := s.db.Model(&models.OrderItem{}).
		Select("order_id, COUNT(*) as n").
		Where("order_id IN ?", ids).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("error counting order items: %v", err)
		return
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.OrderID] = r.N
	}
	for i := range orders {
		orders[i].ItemCount = counts[orders[i].ID]
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

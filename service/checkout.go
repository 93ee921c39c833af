package service

import (
	"log"

	"github.com/neosburritos/burrito-api/models"
	"github.com/neosburritos/burrito-api/store"
)

// CheckoutResult is the single combined outcome the UI sees for
// "create order, then pay". When PaymentFailed is true the order was created
// and is still pending — only the charge was declined.
type CheckoutResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	OrderID       uint    `json:"order_id"`
	Total         float64 `json:"total"`
	TransactionID string  `json:"transaction_id,omitempty"`
	PaymentFailed bool    `json:"payment_failed,omitempty"`
}

// CheckoutService sequences the two-step checkout: an atomic
// create-order-from-cart, then the non-atomic payment charge. The two steps
// are deliberately not one transaction, matching the gateway boundary.
type CheckoutService struct {
	orders   *store.OrderStore
	payments *PaymentService
}

func NewCheckoutService(orders *store.OrderStore, payments *PaymentService) *CheckoutService {
	return &CheckoutService{orders: orders, payments: payments}
}

// PlaceOrder converts the user's cart into an order priced in currencyCode
// and charges it. Order-creation failure short-circuits before any charge.
// A declined charge leaves the pending order in place and reports its id so
// the customer can retry payment.
func (s *CheckoutService) PlaceOrder(userID uint, currencyCode, deliveryAddress, notes string, method PaymentMethod, paymentDetails string) CheckoutResult {
	if !s.payments.ValidateDetails(method, paymentDetails) {
		return CheckoutResult{Message: "Invalid payment details. " + MethodRequirements(method)}
	}

	orderResult := s.orders.CreateOrderFromCart(userID, currencyCode, deliveryAddress, notes)
	if !orderResult.Success {
		return CheckoutResult{Message: orderResult.Message}
	}

	payResult := s.payments.ProcessPayment(orderResult.OrderID, orderResult.Total, currencyCode, method)
	if !payResult.Success {
		return CheckoutResult{
			Message:       payResult.Message,
			OrderID:       orderResult.OrderID,
			Total:         orderResult.Total,
			PaymentFailed: true,
		}
	}

	if !s.orders.UpdateOrderStatus(orderResult.OrderID, models.OrderStatusConfirmed) {
		// The charge went through; leave the order pending and let staff
		// confirm it manually rather than failing the whole checkout.
		log.Printf("order %d paid but could not be confirmed", orderResult.OrderID)
	}

	return CheckoutResult{
		Success:       true,
		Message:       "Order placed and paid successfully",
		OrderID:       orderResult.OrderID,
		Total:         orderResult.Total,
		TransactionID: payResult.TransactionID,
	}
}

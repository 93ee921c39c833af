package service

import (
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/neosburritos/burrito-api/config"
)

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "credit_card"
	MethodDebitCard      PaymentMethod = "debit_card"
	MethodPayPal         PaymentMethod = "paypal"
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// PaymentResult is the gateway's answer. TransactionID is empty on failure.
type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// PaymentService simulates a card gateway: it sleeps like one, approves with
// a configurable probability, and hands back synthetic transaction ids.
// It holds no state about orders — payment is deliberately NOT transactional
// with order creation, so an order can sit pending after a declined payment.
type PaymentService struct {
	SuccessRate       float64
	RefundSuccessRate float64
	MinDelay          time.Duration
	MaxDelay          time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPaymentService reads its policy from the environment: success rate
// defaults to 0.90 and latency to 1-3s.
func NewPaymentService() *PaymentService {
	return &PaymentService{
		SuccessRate:       config.PaymentSuccessRate(),
		RefundSuccessRate: 0.95,
		MinDelay:          config.PaymentMinDelay(),
		MaxDelay:          config.PaymentMaxDelay(),
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ProcessPayment charges an order's total. The artificial delay models a real
// gateway's latency; the outcome is a coin flip weighted by SuccessRate.
func (s *PaymentService) ProcessPayment(orderID uint, amount float64, currencyCode string, method PaymentMethod) PaymentResult {
	s.sleep(s.MinDelay, s.MaxDelay)

	if s.roll() < s.SuccessRate {
		txn := s.generateTransactionID()
		msg := fmt.Sprintf("Payment of %s %.2f processed successfully via %s",
			currencyCode, amount, methodDisplayName(method))
		log.Printf("payment processed for order %d (transaction %s)", orderID, txn)
		return PaymentResult{Success: true, Message: msg, TransactionID: txn}
	}

	log.Printf("payment failed for order %d", orderID)
	return PaymentResult{Message: "Payment failed. Please check your payment details and try again."}
}

// RefundPayment reverses a prior charge, with its own (shorter) delay and its
// own success rate.
func (s *PaymentService) RefundPayment(transactionID string, amount float64, currencyCode string) PaymentResult {
	s.sleep(s.MinDelay/2, s.MaxDelay/2)

	if s.roll() < s.RefundSuccessRate {
		refundID := s.generateTransactionID()
		msg := fmt.Sprintf("Refund of %s %.2f processed successfully", currencyCode, amount)
		log.Printf("refund processed for transaction %s (refund %s)", transactionID, refundID)
		return PaymentResult{Success: true, Message: msg, TransactionID: refundID}
	}

	log.Printf("refund failed for transaction %s", transactionID)
	return PaymentResult{Message: "Refund failed. Please contact customer support."}
}

var cardNumberPattern = regexp.MustCompile(`^\d{16}$`)

// ValidateDetails checks payment details for a method before any charge is
// attempted. Cash on delivery needs none.
func (s *PaymentService) ValidateDetails(method PaymentMethod, details string) bool {
	switch method {
	case MethodCreditCard, MethodDebitCard:
		return cardNumberPattern.MatchString(strings.ReplaceAll(details, " ", ""))
	case MethodPayPal:
		return strings.Contains(details, "@") && strings.Contains(details, ".")
	case MethodCashOnDelivery:
		return true
	default:
		return false
	}
}

// MethodRequirements is the user-facing hint for a payment method's details.
func MethodRequirements(method PaymentMethod) string {
	switch method {
	case MethodCreditCard:
		return "Enter 16-digit credit card number (e.g., 1234 5678 9012 3456)"
	case MethodDebitCard:
		return "Enter 16-digit debit card number (e.g., 1234 5678 9012 3456)"
	case MethodPayPal:
		return "Enter PayPal email address"
	case MethodCashOnDelivery:
		return "No payment details required - pay when order is delivered"
	default:
		return "Enter payment details"
	}
}

func methodDisplayName(method PaymentMethod) string {
	switch method {
	case MethodCreditCard:
		return "Credit Card"
	case MethodDebitCard:
		return "Debit Card"
	case MethodPayPal:
		return "PayPal"
	case MethodCashOnDelivery:
		return "Cash on Delivery"
	default:
		return string(method)
	}
}

const txnChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateTransactionID returns "TXN" plus 12 random alphanumerics.
func (s *PaymentService) generateTransactionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, 12)
	for i := range b {
		b[i] = txnChars[s.random().Intn(len(txnChars))]
	}
	return "TXN" + string(b)
}

func (s *PaymentService) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random().Float64()
}

func (s *PaymentService) sleep(min, max time.Duration) {
	if max <= min {
		time.Sleep(min)
		return
	}
	s.mu.Lock()
	jitter := time.Duration(s.random().Int63n(int64(max - min)))
	s.mu.Unlock()
	time.Sleep(min + jitter)
}

// random lazily seeds the source so a zero-value PaymentService still works.
// Callers must hold mu.
func (s *PaymentService) random() *rand.Rand {
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.rng
}

package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // payment went through
	OrderStatusPreparing OrderStatus = "preparing" // kitchen started
	OrderStatusReady     OrderStatus = "ready"     // ready for pickup/dispatch
	OrderStatusDelivered OrderStatus = "delivered" // customer received the order
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	OrderDate       time.Time   `json:"order_date"`
	TotalAmount     float64     `json:"total_amount"`
	CurrencyCode    string      `gorm:"type:VARCHAR(3)" json:"currency_code"`
	CurrencySymbol  string      `json:"currency_symbol"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           string      `json:"notes"`
	ItemCount       int         `gorm:"-" json:"item_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is the frozen snapshot of a cart line taken at order creation.
// Product name and prices are denormalized on purpose so the audit record
// survives later product edits.
type OrderItem struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"order_item_id"`
	OrderID        uint    `gorm:"index" json:"order_id"`
	ProductID      uint    `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
	Customizations string  `json:"customizations"`
}

package models

import "time"

// CartItem is one line of a user's cart. There is no cart header row:
// a user's cart is simply every CartItem carrying their user id,
// ordered by insertion.
type CartItem struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	ProductID      uint      `gorm:"not null" json:"product_id"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Customizations string    `json:"customizations"`
	AddedAt        time.Time `json:"added_at"`

	// Priced live on read from the product's base price, never persisted.
	ProductName    string  `gorm:"-" json:"product_name,omitempty"`
	UnitPrice      float64 `gorm:"-" json:"unit_price"`
	TotalPrice     float64 `gorm:"-" json:"total_price"`
	CurrencySymbol string  `gorm:"-" json:"currency_symbol,omitempty"`
}

package models

import "time"

type Category string

const (
	CategoryBurrito Category = "BURRITO"
	CategoryBowl    Category = "BOWL"
	CategoryDrink   Category = "DRINK"
	CategorySide    Category = "SIDE"
)

type Product struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description"`
	BasePrice      float64   `gorm:"not null" json:"base_price"` // in the product's home currency
	CurrencyCode   string    `gorm:"type:VARCHAR(3);default:'USD'" json:"currency_code"`
	Category       Category  `gorm:"type:VARCHAR(20);not null" json:"category"`
	Stock          int       `json:"stock"`
	IsCustomizable bool      `gorm:"default:false" json:"is_customizable"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Populated on currency-aware reads, never persisted.
	ConvertedPrice  float64 `gorm:"-" json:"converted_price,omitempty"`
	DisplayCurrency string  `gorm:"-" json:"display_currency,omitempty"`
	CurrencySymbol  string  `gorm:"-" json:"currency_symbol,omitempty"`
}

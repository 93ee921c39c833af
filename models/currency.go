package models

// Currency is one row of the exchange-rate table. RateToUSD is how many
// units of this currency one USD buys, so USD itself is 1.0.
type Currency struct {
	Code      string  `gorm:"primaryKey;type:VARCHAR(3)" json:"code"`
	Symbol    string  `gorm:"not null" json:"symbol"`
	RateToUSD float64 `gorm:"not null" json:"rate_to_usd"`
}

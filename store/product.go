package store

import (
	"log"

	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

// ProductStore serves the menu and its admin-side management.
type ProductStore struct {
	db         *gorm.DB
	currencies *CurrencyStore
}

func NewProductStore(db *gorm.DB, currencies *CurrencyStore) *ProductStore {
	return &ProductStore{db: db, currencies: currencies}
}

// GetProductsByCurrency lists active products with their base price converted
// into currencyCode. A nil category means all categories.
func (s *ProductStore) GetProductsByCurrency(currencyCode string, category *models.Category) []models.Product {
	query := s.db.Where("is_active = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	products := []models.Product{}
	if err := query.Order("category asc, name asc").Find(&products).Error; err != nil {
		log.Printf("error retrieving products for currency %s: %v", currencyCode, err)
		return []models.Product{}
	}

	symbol := s.currencies.Symbol(currencyCode)
	converted := products[:0]
	for _, p := range products {
		price, ok := s.currencies.Convert(p.BasePrice, p.CurrencyCode, currencyCode)
		if !ok {
			continue
		}
		p.ConvertedPrice = price
		p.DisplayCurrency = currencyCode
		p.CurrencySymbol = symbol
		converted = append(converted, p)
	}
	return converted
}

// GetByID loads a single product with its price converted, or nil.
func (s *ProductStore) GetByID(productID uint, currencyCode string) *models.Product {
	var p models.Product
	if err := s.db.First(&p, "id = ?", productID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("error getting product %d: %v", productID, err)
		}
		return nil
	}
	if price, ok := s.currencies.Convert(p.BasePrice, p.CurrencyCode, currencyCode); ok {
		p.ConvertedPrice = price
		p.DisplayCurrency = currencyCode
		p.CurrencySymbol = s.currencies.Symbol(currencyCode)
	}
	return &p
}

// AddProduct creates a product priced in its home currency, returning the new
// id (zero on failure).
func (s *ProductStore) AddProduct(p models.Product) (uint, bool) {
	if p.Name == "" || p.BasePrice <= 0 || !s.currencies.IsSupported(p.CurrencyCode) {
		return 0, false
	}
	if err := s.db.Create(&p).Error; err != nil {
		log.Printf("error adding product %s: %v", p.Name, err)
		return 0, false
	}
	return p.ID, true
}

// UpdateProduct edits the descriptive fields of a product.
func (s *ProductStore) UpdateProduct(productID uint, name, description string, basePrice float64, customizable bool) bool {
	if name == "" || basePrice <= 0 {
		return false
	}
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"name":            name,
		"description":     description,
		"base_price":      basePrice,
		"is_customizable": customizable,
	})
	if res.Error != nil {
		log.Printf("error updating product %d: %v", productID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// UpdateStock sets a product's absolute stock quantity.
func (s *ProductStore) UpdateStock(productID uint, stock int) bool {
	if stock < 0 {
		return false
	}
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).Update("stock", stock)
	if res.Error != nil {
		log.Printf("error updating stock for product %d: %v", productID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// SetActive toggles whether a product is listed.
func (s *ProductStore) SetActive(productID uint, active bool) bool {
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).Update("is_active", active)
	if res.Error != nil {
		log.Printf("error toggling product %d: %v", productID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

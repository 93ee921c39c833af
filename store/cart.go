package store

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

// CartStore maintains the mutable pre-order line items for a user.
//
// Database errors are logged and surfaced to callers as safe defaults
// (false, empty slice, zero) rather than returned — the UI layer treats
// every outcome as a value.
type CartStore struct {
	db         *gorm.DB
	currencies *CurrencyStore
}

func NewCartStore(db *gorm.DB, currencies *CurrencyStore) *CartStore {
	return &CartStore{db: db, currencies: currencies}
}

// AddToCart adds quantity of a product to the user's cart. A line with the
// same product and the same customization text is merged by incrementing its
// quantity instead of inserting a duplicate row.
func (s *CartStore) AddToCart(userID, productID uint, quantity int, customizations string) bool {
	if quantity < 1 {
		return false
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ? AND is_active = ?", productID, true).First(&product).Error; err != nil {
			return err
		}

		var line models.CartItem
		err := tx.Where("user_id = ? AND product_id = ? AND customizations = ?",
			userID, productID, customizations).First(&line).Error
		if err == nil {
			return tx.Model(&line).Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Create(&models.CartItem{
			UserID:         userID,
			ProductID:      productID,
			Quantity:       quantity,
			Customizations: customizations,
			AddedAt:        time.Now(),
		}).Error
	})
	if err != nil {
		log.Printf("error adding to cart: %v", err)
		return false
	}
	return true
}

// GetCartItems returns the user's cart lines in insertion order, each priced
// live by converting the product's base price into currencyCode. An unknown
// currency yields an empty slice, never zero-priced lines.
func (s *CartStore) GetCartItems(userID uint, currencyCode string) []models.CartItem {
	if !s.currencies.IsSupported(currencyCode) {
		log.Printf("cart read for user %d with unsupported currency %s", userID, currencyCode)
		return []models.CartItem{}
	}

	items := []models.CartItem{}
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		log.Printf("error getting cart items: %v", err)
		return []models.CartItem{}
	}
	if len(items) == 0 {
		return items
	}

	products, err := s.productsFor(items)
	if err != nil {
		log.Printf("error getting cart products: %v", err)
		return []models.CartItem{}
	}

	symbol := s.currencies.Symbol(currencyCode)
	for i := range items {
		p, ok := products[items[i].ProductID]
		if !ok {
			continue
		}
		unit, ok := s.currencies.Convert(p.BasePrice, p.CurrencyCode, currencyCode)
		if !ok {
			continue
		}
		items[i].ProductName = p.Name
		items[i].UnitPrice = unit
		items[i].TotalPrice = round2(unit * float64(items[i].Quantity))
		items[i].CurrencySymbol = symbol
	}
	return items
}

// UpdateQuantity sets the quantity of a single cart line.
func (s *CartStore) UpdateQuantity(cartID uint, quantity int) bool {
	if quantity < 1 {
		return false
	}
	res := s.db.Model(&models.CartItem{}).Where("id = ?", cartID).Update("quantity", quantity)
	if res.Error != nil {
		log.Printf("error updating cart item: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// UpdateCustomization replaces the customization text of a single cart line.
func (s *CartStore) UpdateCustomization(cartID uint, customizations string) bool {
	res := s.db.Model(&models.CartItem{}).Where("id = ?", cartID).Update("customizations", customizations)
	if res.Error != nil {
		log.Printf("error updating cart item customizations: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// RemoveItem deletes a single cart line.
func (s *CartStore) RemoveItem(cartID uint) bool {
	res := s.db.Where("id = ?", cartID).Delete(&models.CartItem{})
	if res.Error != nil {
		log.Printf("error removing from cart: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// ClearCart deletes every cart line for a user.
func (s *CartStore) ClearCart(userID uint) bool {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("error clearing cart: %v", err)
		return false
	}
	return true
}

// GetCartTotal sums the user's cart in currencyCode, converting each line's
// product price at read time so totals track exchange-rate edits. An empty
// cart (or a failed read) totals exactly 0.
func (s *CartStore) GetCartTotal(userID uint, currencyCode string) float64 {
	var total float64
	for _, item := range s.GetCartItems(userID, currencyCode) {
		total += item.TotalPrice
	}
	return round2(total)
}

// GetItemCount counts cart rows for a user, not the sum of quantities.
// UI badges depend on this literally counting lines.
func (s *CartStore) GetItemCount(userID uint) int {
	var count int64
	if err := s.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		log.Printf("error getting cart item count: %v", err)
		return 0
	}
	return int(count)
}

func (s *CartStore) productsFor(items []models.CartItem) (map[uint]models.Product, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	var products []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

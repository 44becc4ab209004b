package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Quantity  int       `json:"quantity"` // available stock of the item
	Available bool      `json:"available" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToggleAvailability flips the availability flag and persists it.
// The flag is independent of stock: an item at zero stock keeps whatever
// flag it has, and visibility queries combine both conditions themselves.
func (m *MenuItem) ToggleAvailability(db *gorm.DB) error {
	m.Available = !m.Available
	return db.Model(m).Update("available", m.Available).Error
}

// CartItem is a pre-checkout staging row for one user and one menu item.
// Rows never outlive checkout — confirming an order deletes them.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem  `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	AddedAt    time.Time `json:"added_at" gorm:"autoCreateTime"`
}

// CartTotal computes the live total for a set of cart rows. The total is
// derived on read from current menu prices and is never persisted.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.MenuItem.Price * float64(it.Quantity)
	}
	return total
}

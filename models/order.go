package models

import "time"

// OrderStatus represents all possible states of a canteen order
type OrderStatus string

const (
	StatusOrdered   OrderStatus = "ordered"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPrepared  OrderStatus = "prepared"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TotalPrice  float64     `json:"total_price"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'ordered'"`
	OrderedAt   time.Time   `json:"ordered_at" gorm:"autoCreateTime"`
	PreparedAt  *time.Time  `json:"prepared_at"`
	DeliveredAt *time.Time  `json:"delivered_at"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	TotalPrice float64  `json:"total_price" gorm:"not null"` // snapshot: unit price × quantity at checkout
	Name       string   `json:"name"`                        // snapshot name
}

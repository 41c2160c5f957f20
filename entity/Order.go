package entity

import (
	"gorm.io/gorm"
)

// Order lifecycle: created open, flipped to completed exactly once when the
// bill is generated.
const (
	OrderStatusOpen      = "open"
	OrderStatusCompleted = "completed"
)

type Order struct {
	gorm.Model
	RefCode string `gorm:"size:36;uniqueIndex"` // printed on the bill
	Status  string `gorm:"size:20;not null;default:open"`

	// nil for walk-in orders without a registered customer
	CustomerID *uint     `gorm:"index"`
	Customer   *Customer `gorm:"foreignKey:CustomerID"`

	// preload only for detail views
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID"`
	Bill       *OrderBill      `gorm:"foreignKey:OrderID"`
	Discounts  []OrderDiscount `gorm:"foreignKey:OrderID"`
	Payments   []OrderPayment  `gorm:"foreignKey:OrderID"`
}

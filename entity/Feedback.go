package entity

import (
	"gorm.io/gorm"
)

// Feedback can be scoped to an order, to a customer, or left anonymous.
// The nullable keys express the scope.
type Feedback struct {
	gorm.Model
	Message string `gorm:"type:text;not null"`
	Rating  int    `gorm:"not null;default:0"`

	CustomerID *uint `gorm:"index"`
	OrderID    *uint `gorm:"index"`
	ItemID     *uint

	CategoryID uint           `gorm:"not null"`
	Category   ReviewCategory `gorm:"foreignKey:CategoryID"`
}

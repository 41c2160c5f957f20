package entity

import (
	"gorm.io/gorm"
)

// OrderItem is one ordered line. Repeating the same menu item adds another
// row, lines are never merged.
type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null"`

	OrderID uint  `gorm:"index;not null"`
	Order   Order `gorm:"foreignKey:OrderID"`

	ItemID uint     `gorm:"not null"`
	Item   MenuItem `gorm:"foreignKey:ItemID"` // preload only when the name is needed
}

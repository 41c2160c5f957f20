package entity

import (
	"gorm.io/gorm"
)

// Complaint mirrors Feedback's scoping: order, customer, or anonymous.
type Complaint struct {
	gorm.Model
	Message string `gorm:"type:text;not null"`

	CustomerID *uint `gorm:"index"`
	OrderID    *uint `gorm:"index"`
	ItemID     *uint

	CategoryID uint           `gorm:"not null"`
	Category   ReviewCategory `gorm:"foreignKey:CategoryID"`
}

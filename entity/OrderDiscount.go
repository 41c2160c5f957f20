package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDiscount is a ledger row per applied catalog discount or loyalty
// redemption. An order may accumulate several, including repeats of the same
// discount.
type OrderDiscount struct {
	gorm.Model
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	OrderID uint  `gorm:"index;not null"`
	Order   Order `gorm:"foreignKey:OrderID"`

	// exactly one of the two is set
	DiscountID        *uint     `gorm:"index"`
	Discount          *Discount `gorm:"foreignKey:DiscountID"`
	LoyaltyPointsUsed *int
}

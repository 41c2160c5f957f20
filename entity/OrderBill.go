package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending       = "pending"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
)

// OrderBill holds the money totals for one order. FinalPrice always equals
// TotalPrice minus DiscountApplied; DiscountApplied is the sum over the
// order's OrderDiscount rows.
type OrderBill struct {
	gorm.Model
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountApplied decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FinalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentStatus   string          `gorm:"size:20;not null;default:pending"`

	OrderID uint  `gorm:"uniqueIndex;not null"`
	Order   Order `gorm:"foreignKey:OrderID"`
}

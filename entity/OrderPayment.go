package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// OrderPayment is one payment row. Partial payments repeat, each recorded.
type OrderPayment struct {
	gorm.Model
	AmountPaid decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method     string          `gorm:"size:20;not null"`

	OrderID uint  `gorm:"index;not null"`
	Order   Order `gorm:"foreignKey:OrderID"`
}

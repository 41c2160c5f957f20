package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Discount struct {
	gorm.Model
	DiscountName  string          `gorm:"size:100;not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MinOrderValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive      bool            `gorm:"not null;default:true"`

	TypeID uint         `gorm:"not null"`
	Type   DiscountType `gorm:"foreignKey:TypeID"`
}

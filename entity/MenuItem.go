package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	ItemName string          `gorm:"size:100;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CategoryID uint         `gorm:"not null"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID"`
}

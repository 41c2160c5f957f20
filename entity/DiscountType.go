package entity

import (
	"gorm.io/gorm"
)

const (
	DiscountTypeFlat       = "flat"
	DiscountTypePercentage = "percentage"
)

type DiscountType struct {
	gorm.Model
	TypeName string `gorm:"size:50;uniqueIndex;not null"`

	Discounts []Discount `gorm:"foreignKey:TypeID"`
}

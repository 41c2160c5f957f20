package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	CategoryName string `gorm:"size:80;uniqueIndex;not null"`

	Items []MenuItem `gorm:"foreignKey:CategoryID"`
}

package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name     string `gorm:"size:100;not null"`
	MobileNo string `gorm:"size:20;index"`
	Email    string `gorm:"size:120"`

	Loyalty *LoyaltyProgram `gorm:"foreignKey:CustomerID"` // preload only when the balance is needed

	Orders     []Order     `gorm:"foreignKey:CustomerID"`
	Feedbacks  []Feedback  `gorm:"foreignKey:CustomerID"`
	Complaints []Complaint `gorm:"foreignKey:CustomerID"`
}

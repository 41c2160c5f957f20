package entity

import (
	"gorm.io/gorm"
)

// LoyaltyPointsLog records point movements per order. Earn rows are upserted
// so an order carries at most one, redemption rows are appended as they
// happen.
type LoyaltyPointsLog struct {
	gorm.Model
	CustomerID uint `gorm:"index;not null"`
	OrderID    uint `gorm:"index;not null"`

	PointsEarned   int `gorm:"not null;default:0"`
	PointsRedeemed int `gorm:"not null;default:0"`
}

package entity

import (
	"gorm.io/gorm"
)

type LoyaltyProgram struct {
	gorm.Model
	TotalPoints int `gorm:"not null;default:0"` // never negative

	CustomerID uint     `gorm:"uniqueIndex;not null"`
	Customer   Customer `gorm:"foreignKey:CustomerID"`

	// TierID is derived from TotalPoints, never authoritative on its own.
	TierID uint        `gorm:"not null"`
	Tier   LoyaltyTier `gorm:"foreignKey:TierID"`
}

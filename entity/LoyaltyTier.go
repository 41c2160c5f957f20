package entity

import (
	"gorm.io/gorm"
)

// LoyaltyTier buckets a points balance by ceiling. Tiers are read in
// max_points ascending order; the last row is the unbounded top tier.
type LoyaltyTier struct {
	gorm.Model
	TierName  string `gorm:"size:50;uniqueIndex;not null"`
	MinPoints int    `gorm:"not null"`
	MaxPoints int    `gorm:"not null"`
}

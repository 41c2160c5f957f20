package entity

import (
	"gorm.io/gorm"
)

// ReviewCategory classifies both feedbacks and complaints.
type ReviewCategory struct {
	gorm.Model
	CategoryName string `gorm:"size:80;uniqueIndex;not null"`
}

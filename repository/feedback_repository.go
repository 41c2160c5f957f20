package repository

import (
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"gorm.io/gorm"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) ListCategories(db *gorm.DB) ([]entity.ReviewCategory, error) {
	var out []entity.ReviewCategory
	err := db.Order("id").Find(&out).Error
	return out, err
}

func (r *FeedbackRepository) CreateFeedback(db *gorm.DB, f *entity.Feedback) error {
	if err := db.Create(f).Error; err != nil {
		return fmt.Errorf("%w: create feedback: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *FeedbackRepository) CreateComplaint(db *gorm.DB, c *entity.Complaint) error {
	if err := db.Create(c).Error; err != nil {
		return fmt.Errorf("%w: create complaint: %v", apperr.ErrPersistence, err)
	}
	return nil
}

package repository

import (
	"errors"
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"gorm.io/gorm"
)

type LoyaltyRepository struct{}

func NewLoyaltyRepository() *LoyaltyRepository {
	return &LoyaltyRepository{}
}

func (r *LoyaltyRepository) CreateProgram(db *gorm.DB, p *entity.LoyaltyProgram) error {
	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("%w: create loyalty program: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *LoyaltyRepository) GetProgram(db *gorm.DB, loyaltyID uint) (*entity.LoyaltyProgram, error) {
	var p entity.LoyaltyProgram
	if err := db.First(&p, loyaltyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: loyalty program %d", apperr.ErrNotFound, loyaltyID)
		}
		return nil, err
	}
	return &p, nil
}

func (r *LoyaltyRepository) GetProgramByCustomer(db *gorm.DB, customerID uint) (*entity.LoyaltyProgram, error) {
	var p entity.LoyaltyProgram
	err := db.Where("customer_id = ?", customerID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: loyalty program for customer %d", apperr.ErrNotFound, customerID)
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePoints writes the new balance and the tier derived from it in one go;
// the two must never drift apart.
func (r *LoyaltyRepository) UpdatePoints(db *gorm.DB, loyaltyID uint, totalPoints int, tierID uint) error {
	res := db.Model(&entity.LoyaltyProgram{}).
		Where("id = ?", loyaltyID).
		Updates(map[string]any{"total_points": totalPoints, "tier_id": tierID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: loyalty program %d", apperr.ErrNotFound, loyaltyID)
	}
	return nil
}

// ListTiers returns tiers in max_points ascending order, the order the
// classifier depends on.
func (r *LoyaltyRepository) ListTiers(db *gorm.DB) ([]entity.LoyaltyTier, error) {
	var tiers []entity.LoyaltyTier
	err := db.Order("max_points").Find(&tiers).Error
	return tiers, err
}

// GetEarnLog returns the single earn row for an order, or nil if none exists
// yet.
func (r *LoyaltyRepository) GetEarnLog(db *gorm.DB, orderID uint) (*entity.LoyaltyPointsLog, error) {
	var l entity.LoyaltyPointsLog
	err := db.Where("order_id = ? AND points_earned > 0", orderID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoyaltyRepository) CreateLog(db *gorm.DB, l *entity.LoyaltyPointsLog) error {
	return db.Create(l).Error
}

func (r *LoyaltyRepository) UpdateEarnLog(db *gorm.DB, logID uint, pointsEarned int) error {
	return db.Model(&entity.LoyaltyPointsLog{}).
		Where("id = ?", logID).
		Update("points_earned", pointsEarned).Error
}

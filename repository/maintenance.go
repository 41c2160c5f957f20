package repository

import (
	"github.com/Shenile/cafe-crm/entity"

	"gorm.io/gorm"
)

// Wipe hard-deletes all transactional records in dependency order, leaving
// the catalog tables (menu, discounts, tiers, categories) in place.
func Wipe(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&entity.Feedback{},
			&entity.Complaint{},
			&entity.OrderPayment{},
			&entity.OrderDiscount{},
			&entity.OrderBill{},
			&entity.OrderItem{},
			&entity.LoyaltyPointsLog{},
			&entity.Order{},
			&entity.LoyaltyProgram{},
			&entity.Customer{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Unscoped().Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package configs

import (
	"github.com/Shenile/cafe-crm/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the store and returns the handle explicitly; everything
// downstream receives it as a parameter, there is no package-level session.
func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Customer{},
		&entity.LoyaltyTier{}, &entity.LoyaltyProgram{}, &entity.LoyaltyPointsLog{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.DiscountType{}, &entity.Discount{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.OrderBill{}, &entity.OrderDiscount{}, &entity.OrderPayment{},
		&entity.ReviewCategory{}, &entity.Feedback{}, &entity.Complaint{},
	)
}

package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountRepository struct{}

func NewDiscountRepository() *DiscountRepository {
	return &DiscountRepository{}
}

// DiscountRow is a discount joined with its type name, ordered by id.
type DiscountRow struct {
	DiscountID    uint
	DiscountName  string
	TypeName      string
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	IsActive      bool
}

func (r *DiscountRepository) ListActiveWithTypes(db *gorm.DB) ([]DiscountRow, error) {
	var rows []DiscountRow
	err := db.Table("discounts AS d").
		Select("d.id AS discount_id, d.discount_name, dt.type_name, d.discount_value, d.min_order_value, d.is_active").
		Joins("INNER JOIN discount_types dt ON dt.id = d.type_id").
		Where("d.is_active = ? AND d.deleted_at IS NULL", true).
		Order("d.id").
		Scan(&rows).Error
	return rows, err
}

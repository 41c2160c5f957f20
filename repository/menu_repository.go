package repository

import (
	"errors"
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

// MenuRow is the menu joined with its category, the shape shown to the
// operator.
type MenuRow struct {
	ItemID       uint
	ItemName     string
	Price        decimal.Decimal
	CategoryName string
}

func (r *MenuRepository) ListWithCategories(db *gorm.DB) ([]MenuRow, error) {
	var rows []MenuRow
	err := db.Table("menu_items AS m").
		Select("m.id AS item_id, m.item_name, m.price, mc.category_name").
		Joins("INNER JOIN menu_categories mc ON mc.id = m.category_id").
		Where("m.deleted_at IS NULL").
		Order("m.id").
		Scan(&rows).Error
	return rows, err
}

func (r *MenuRepository) GetItem(db *gorm.DB, itemID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := db.First(&m, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, itemID)
		}
		return nil, err
	}
	return &m, nil
}

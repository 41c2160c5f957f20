package repository

import (
	"errors"
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(db *gorm.DB, o *entity.Order) error {
	if err := db.Create(o).Error; err != nil {
		return fmt.Errorf("%w: create order: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *OrderRepository) Get(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	return &o, nil
}

// Complete flips the order open → completed with a status guard, so the
// transition happens exactly once.
func (r *OrderRepository) Complete(db *gorm.DB, orderID uint) error {
	res := db.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderStatusOpen).
		Update("status", entity.OrderStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order %d is not open", apperr.ErrInvalidArgument, orderID)
	}
	return nil
}

func (r *OrderRepository) AddItem(db *gorm.DB, oi *entity.OrderItem) error {
	if err := db.Create(oi).Error; err != nil {
		return fmt.Errorf("%w: add order item: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *OrderRepository) ListItems(db *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

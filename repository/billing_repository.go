package repository

import (
	"errors"
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillingRepository struct{}

func NewBillingRepository() *BillingRepository {
	return &BillingRepository{}
}

func (r *BillingRepository) CreateBill(db *gorm.DB, b *entity.OrderBill) error {
	if err := db.Create(b).Error; err != nil {
		return fmt.Errorf("%w: create bill: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *BillingRepository) GetBill(db *gorm.DB, orderID uint) (*entity.OrderBill, error) {
	var b entity.OrderBill
	err := db.Where("order_id = ?", orderID).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bill for order %d", apperr.ErrNotFound, orderID)
		}
		return nil, err
	}
	return &b, nil
}

// UpdateTotals rewrites the cumulative discount and the final price together.
func (r *BillingRepository) UpdateTotals(db *gorm.DB, orderID uint, discountApplied, finalPrice decimal.Decimal) error {
	res := db.Model(&entity.OrderBill{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{"discount_applied": discountApplied, "final_price": finalPrice})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: bill for order %d", apperr.ErrNotFound, orderID)
	}
	return nil
}

func (r *BillingRepository) SetPaymentStatus(db *gorm.DB, orderID uint, status string) error {
	res := db.Model(&entity.OrderBill{}).
		Where("order_id = ?", orderID).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: bill for order %d", apperr.ErrNotFound, orderID)
	}
	return nil
}

func (r *BillingRepository) CreatePayment(db *gorm.DB, p *entity.OrderPayment) error {
	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("%w: create payment: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *BillingRepository) ListPayments(db *gorm.DB, orderID uint) ([]entity.OrderPayment, error) {
	var out []entity.OrderPayment
	err := db.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}

func (r *BillingRepository) AddOrderDiscount(db *gorm.DB, od *entity.OrderDiscount) error {
	if err := db.Create(od).Error; err != nil {
		return fmt.Errorf("%w: add order discount: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *BillingRepository) ListOrderDiscounts(db *gorm.DB, orderID uint) ([]entity.OrderDiscount, error) {
	var out []entity.OrderDiscount
	err := db.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}

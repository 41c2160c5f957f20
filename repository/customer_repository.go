package repository

import (
	"errors"
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"

	"gorm.io/gorm"
)

// Every repository method takes the transaction-scope handle explicitly so
// reads and writes land in whatever transaction the workflow opened.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Columns a customer may be looked up by at the counter.
const (
	CustomerByID     = "id"
	CustomerByMobile = "mobile_no"
	CustomerByName   = "name"
)

func (r *CustomerRepository) Create(db *gorm.DB, c *entity.Customer) error {
	if err := db.Create(c).Error; err != nil {
		return fmt.Errorf("%w: create customer: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(db *gorm.DB, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &c, nil
}

// FindBy resolves a customer by one of the whitelisted lookup columns.
func (r *CustomerRepository) FindBy(db *gorm.DB, column string, value any) (*entity.Customer, error) {
	switch column {
	case CustomerByID, CustomerByMobile, CustomerByName:
	default:
		return nil, fmt.Errorf("%w: lookup column %q", apperr.ErrInvalidArgument, column)
	}
	var c entity.Customer
	err := db.Where(fmt.Sprintf("%s = ?", column), value).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer with %s=%v", apperr.ErrNotFound, column, value)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(db *gorm.DB) ([]entity.Customer, error) {
	var out []entity.Customer
	err := db.Order("id").Find(&out).Error
	return out, err
}

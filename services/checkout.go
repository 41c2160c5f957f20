package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckoutState names the stations of one customer visit.
type CheckoutState string

const (
	StateCreated          CheckoutState = "created"
	StateItemsAdded       CheckoutState = "items_added"
	StateBilled           CheckoutState = "billed"
	StateDiscountsSettled CheckoutState = "discounts_settled"
	StatePaid             CheckoutState = "paid"
	StateRewardsSettled   CheckoutState = "rewards_settled"
	StateClosed           CheckoutState = "closed"
	StateAborted          CheckoutState = "aborted"
)

// ErrVisitAborted marks a visit the operator walked away from before an
// order was placed. The outer loop treats it as a normal outcome.
var ErrVisitAborted = errors.New("visit aborted")

// CheckoutService drives a whole visit through the billing workflow. All
// steps share one transaction; any error that escapes a step rolls back
// everything written since the visit began.
type CheckoutService struct {
	DB *gorm.DB

	Orders    *repository.OrderRepository
	Menu      *repository.MenuRepository
	Billing   *repository.BillingRepository
	Discounts *repository.DiscountRepository
	Loyalty   *LoyaltyService
	Reviews   *FeedbackService

	UI  Prompter
	Log *zap.Logger
}

func NewCheckoutService(db *gorm.DB, orders *repository.OrderRepository,
	menu *repository.MenuRepository, billing *repository.BillingRepository,
	discounts *repository.DiscountRepository, loyalty *LoyaltyService,
	reviews *FeedbackService, ui Prompter, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		DB:        db,
		Orders:    orders,
		Menu:      menu,
		Billing:   billing,
		Discounts: discounts,
		Loyalty:   loyalty,
		Reviews:   reviews,
		UI:        ui,
		Log:       log,
	}
}

// visit is the in-flight workflow state threaded through the steps.
type visit struct {
	state    CheckoutState
	customer *entity.Customer
	order    *entity.Order
}

func (v *visit) customerID() *uint {
	if v.customer == nil {
		return nil
	}
	id := v.customer.ID
	return &id
}

func (v *visit) orderID() *uint {
	if v.order == nil {
		return nil
	}
	id := v.order.ID
	return &id
}

// advance moves the visit along the fixed chain of states, catching steps
// run out of order.
func (v *visit) advance(from, to CheckoutState) error {
	if v.state != from {
		return fmt.Errorf("checkout in state %q, cannot move %q -> %q", v.state, from, to)
	}
	v.state = to
	return nil
}

// Run executes one visit for the given customer (nil for a walk-in) as a
// single all-or-nothing transaction.
func (s *CheckoutService) Run(customer *entity.Customer) error {
	v := &visit{state: StateCreated, customer: customer}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		steps := []func(*gorm.DB, *visit) error{
			s.createOrder,
			s.addItems,
			s.generateBill,
			s.settleDiscounts,
			s.takePayment,
			s.settleRewards,
		}
		for _, step := range steps {
			if err := step(tx, v); err != nil {
				return err
			}
			s.showProgress(tx, v)
		}
		return s.closeOut(tx, v)
	})
	if err != nil {
		v.state = StateAborted
		if !errors.Is(err, ErrVisitAborted) {
			s.Log.Error("checkout rolled back", zap.Error(err))
		}
		return err
	}

	s.Log.Info("checkout committed",
		zap.Uint("order_id", v.order.ID),
		zap.String("ref_code", v.order.RefCode))
	return nil
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"
	"github.com/Shenile/cafe-crm/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var paymentForm = []Field{
	{Name: "amount_paid", Label: "Amount paid", Kind: FieldDecimal},
	{Name: "method", Label: "Payment method", Kind: FieldEnum,
		Options: []string{entity.PaymentMethodCash, entity.PaymentMethodCard}},
}

// ----- Created -----

func (s *CheckoutService) createOrder(tx *gorm.DB, v *visit) error {
	if !s.UI.ConfirmYesNo("Do you want to order something?") {
		return fmt.Errorf("%w: no order placed", ErrVisitAborted)
	}

	order := entity.Order{
		RefCode:    uuid.NewString(),
		Status:     entity.OrderStatusOpen,
		CustomerID: v.customerID(),
	}
	if err := s.Orders.Create(tx, &order); err != nil {
		return err
	}
	v.order = &order
	return nil
}

// ----- ItemsAdded -----

// addItems loops while the operator keeps adding lines. An order with zero
// items still proceeds; the gate is deliberately permissive.
func (s *CheckoutService) addItems(tx *gorm.DB, v *visit) error {
	if err := v.advance(StateCreated, StateItemsAdded); err != nil {
		return err
	}

	menu, err := s.Menu.ListWithCategories(tx)
	if err != nil {
		return err
	}

	for s.UI.ConfirmYesNo("Do you want to add items?") {
		s.renderMenu(menu)

		itemID := uint(s.UI.PromptInt("Enter the item id to add: "))
		quantity := s.UI.PromptInt("How many (quantity): ")
		if quantity <= 0 {
			s.UI.Say("Quantity must be positive.")
			continue
		}
		if _, err := s.Menu.GetItem(tx, itemID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				s.UI.Say("No such menu item, try again.")
				continue
			}
			return err
		}

		line := entity.OrderItem{OrderID: v.order.ID, ItemID: itemID, Quantity: quantity}
		if err := s.Orders.AddItem(tx, &line); err != nil {
			return err
		}
	}
	return nil
}

// ----- Billed -----

func (s *CheckoutService) generateBill(tx *gorm.DB, v *visit) error {
	if err := v.advance(StateItemsAdded, StateBilled); err != nil {
		return err
	}

	if err := s.Orders.Complete(tx, v.order.ID); err != nil {
		return err
	}
	v.order.Status = entity.OrderStatusCompleted

	items, err := s.Orders.ListItems(tx, v.order.ID)
	if err != nil {
		return err
	}
	totalPrice, err := ComputeSubtotal(items, func(itemID uint) (decimal.Decimal, error) {
		item, err := s.Menu.GetItem(tx, itemID)
		if err != nil {
			return decimal.Zero, err
		}
		return item.Price, nil
	})
	if err != nil {
		return err
	}

	bill := entity.OrderBill{
		OrderID:         v.order.ID,
		TotalPrice:      totalPrice,
		DiscountApplied: decimal.Zero,
		FinalPrice:      totalPrice,
		PaymentStatus:   entity.PaymentStatusPending,
	}
	return s.Billing.CreateBill(tx, &bill)
}

// ----- DiscountsSettled -----

// settleDiscounts runs the loyalty redemption and catalog discount loops,
// then folds every ledger row into the bill. Walk-ins skip the whole phase
// and the initial bill stands.
func (s *CheckoutService) settleDiscounts(tx *gorm.DB, v *visit) error {
	if err := v.advance(StateBilled, StateDiscountsSettled); err != nil {
		return err
	}
	if v.customer == nil {
		return nil
	}

	bill, err := s.Billing.GetBill(tx, v.order.ID)
	if err != nil {
		return err
	}

	if err := s.redeemLoop(tx, v); err != nil {
		return err
	}
	if err := s.discountLoop(tx, v, bill.TotalPrice); err != nil {
		return err
	}

	rows, err := s.Billing.ListOrderDiscounts(tx, v.order.ID)
	if err != nil {
		return err
	}
	totalDiscount := SumDiscountAmounts(rows)
	finalPrice := bill.TotalPrice.Sub(totalDiscount)
	return s.Billing.UpdateTotals(tx, v.order.ID, totalDiscount, finalPrice)
}

// redeemLoop lets the customer spend loyalty points. Insufficient balance
// and too-small claims are recoverable at the prompt: abort or re-enter.
func (s *CheckoutService) redeemLoop(tx *gorm.DB, v *visit) error {
	if !s.UI.ConfirmYesNo("Do you want to use your loyalty points?") {
		return nil
	}

	program, err := s.Loyalty.Repo.GetProgramByCustomer(tx, v.customer.ID)
	if err != nil {
		return err
	}
	costValue := PointsToCash(program.TotalPoints, s.Loyalty.ConversionRate)
	s.UI.RenderTable("Loyalty Points", []string{"Total Points", "Cash Value"},
		[][]string{{fmt.Sprintf("%d", program.TotalPoints), costValue.StringFixed(2)}})

	// Every retry needs an explicit yes. A closed input stream answers no to
	// everything, so the loop winds down instead of re-prompting forever.
	for {
		points := s.UI.PromptInt("Enter number of points to claim: ")

		preview := PointsToCash(points, s.Loyalty.ConversionRate)
		if !s.UI.ConfirmYesNo(fmt.Sprintf("The claim's cash value is %s. Confirm?", preview.StringFixed(2))) {
			if !s.UI.ConfirmYesNo("Do you want to enter a different amount?") {
				s.UI.Say("Claim canceled.")
				return nil
			}
			continue
		}

		_, err := s.Loyalty.RedeemPoints(tx, v.order.ID, v.customer.ID, points)
		switch {
		case errors.Is(err, apperr.ErrInsufficientPoints), errors.Is(err, apperr.ErrBelowMinimumClaim):
			s.UI.Say("%v", err)
			if !s.UI.ConfirmYesNo("Do you want to try a different claim?") {
				s.UI.Say("Claim canceled.")
				return nil
			}
		case err != nil:
			return err
		default:
			s.UI.Say("Loyalty points claim was successful.")
			return nil
		}
	}
}

// discountLoop applies catalog discounts one at a time. Every application
// adds its own ledger row; repeats are not deduplicated.
func (s *CheckoutService) discountLoop(tx *gorm.DB, v *visit, totalPrice decimal.Decimal) error {
	for s.UI.ConfirmYesNo("Do you want to apply discounts?") {
		all, err := s.Discounts.ListActiveWithTypes(tx)
		if err != nil {
			return err
		}
		eligible := EligibleDiscounts(all, totalPrice)
		if len(eligible) == 0 {
			s.UI.Say("No discounts available for this order.")
			return nil
		}
		s.renderDiscounts(eligible)

		selected := uint(s.UI.PromptInt("Enter the discount id to add: "))
		var row *repository.DiscountRow
		for i := range eligible {
			if eligible[i].DiscountID == selected {
				row = &eligible[i]
				break
			}
		}
		if row == nil {
			s.UI.Say("Invalid discount id, try again.")
			continue
		}

		finalPrice, err := ApplyDiscount(totalPrice, row.DiscountValue, row.TypeName)
		if errors.Is(err, apperr.ErrInvalidArgument) {
			s.UI.Say("%v", err)
			continue
		}
		if err != nil {
			return err
		}

		discountID := row.DiscountID
		od := entity.OrderDiscount{
			OrderID:        v.order.ID,
			DiscountID:     &discountID,
			DiscountAmount: totalPrice.Sub(finalPrice),
		}
		if err := s.Billing.AddOrderDiscount(tx, &od); err != nil {
			return err
		}
	}
	return nil
}

// ----- Paid -----

// takePayment validates the amount and derives the bill's payment status
// from this single payment, not the cumulative sum of all payments.
func (s *CheckoutService) takePayment(tx *gorm.DB, v *visit) error {
	if err := v.advance(StateDiscountsSettled, StatePaid); err != nil {
		return err
	}

	bill, err := s.Billing.GetBill(tx, v.order.ID)
	if err != nil {
		return err
	}
	s.renderBill(bill)

	data := s.UI.CollectForm("Payment", paymentForm)
	amountPaid := data["amount_paid"].(decimal.Decimal)
	method := data["method"].(string)

	if amountPaid.IsNegative() {
		return fmt.Errorf("%w: got %s", apperr.ErrNegativeAmount, amountPaid)
	}
	if amountPaid.GreaterThan(bill.FinalPrice) {
		return fmt.Errorf("%w: maximum allowed %s, received %s",
			apperr.ErrOverpayment, bill.FinalPrice, amountPaid)
	}

	status := entity.PaymentStatusPending
	switch {
	case amountPaid.Equal(bill.FinalPrice):
		status = entity.PaymentStatusPaid
	case amountPaid.IsPositive():
		status = entity.PaymentStatusPartiallyPaid
	}
	if err := s.Billing.SetPaymentStatus(tx, v.order.ID, status); err != nil {
		return err
	}

	payment := entity.OrderPayment{OrderID: v.order.ID, AmountPaid: amountPaid, Method: method}
	return s.Billing.CreatePayment(tx, &payment)
}

// ----- RewardsSettled -----

func (s *CheckoutService) settleRewards(tx *gorm.DB, v *visit) error {
	if err := v.advance(StatePaid, StateRewardsSettled); err != nil {
		return err
	}
	if v.customer == nil {
		return nil
	}

	msg, err := s.Loyalty.EarnPoints(tx, v.order.ID, v.customer.ID)
	if err != nil {
		return err
	}
	if msg != "" {
		s.UI.Say(msg)
	}
	return nil
}

// ----- Closed -----

func (s *CheckoutService) closeOut(tx *gorm.DB, v *visit) error {
	if err := v.advance(StateRewardsSettled, StateClosed); err != nil {
		return err
	}

	if err := s.Reviews.CollectFeedbacks(tx, v.customerID(), v.orderID()); err != nil {
		return err
	}
	return s.Reviews.CollectComplaints(tx, v.customerID(), v.orderID())
}

// ----- rendering helpers -----

// showProgress re-renders everything the visit has accumulated so far: who
// is being served, the order, its lines, and the bill once one exists. Runs
// after every station so the operator always sees the full picture.
func (s *CheckoutService) showProgress(tx *gorm.DB, v *visit) {
	who := "Walk-in"
	if v.customer != nil {
		who = fmt.Sprintf("%s (#%d)", v.customer.Name, v.customer.ID)
	}
	rows := [][]string{{"Customer", who}}
	if v.order != nil {
		rows = append(rows,
			[]string{"Order Ref", v.order.RefCode},
			[]string{"Order Status", v.order.Status})
	}
	s.UI.RenderTable("Transaction Details", []string{"Field", "Value"}, rows)

	if v.order == nil {
		return
	}
	if items, err := s.Orders.ListItems(tx, v.order.ID); err == nil && len(items) > 0 {
		lines := make([][]string, 0, len(items))
		for _, it := range items {
			name := uintString(it.ItemID)
			if item, err := s.Menu.GetItem(tx, it.ItemID); err == nil {
				name = item.ItemName
			}
			lines = append(lines, []string{name, strconv.Itoa(it.Quantity)})
		}
		s.UI.RenderTable("Order Items", []string{"Item", "Quantity"}, lines)
	}
	if bill, err := s.Billing.GetBill(tx, v.order.ID); err == nil {
		s.renderBill(bill)
	}
}

func (s *CheckoutService) renderMenu(menu []repository.MenuRow) {
	rows := make([][]string, 0, len(menu))
	for _, m := range menu {
		rows = append(rows, []string{
			uintString(m.ItemID), m.ItemName, m.CategoryName, m.Price.StringFixed(2),
		})
	}
	s.UI.RenderTable("Menu", []string{"ID", "Item", "Category", "Price"}, rows)
}

func (s *CheckoutService) renderDiscounts(discounts []repository.DiscountRow) {
	rows := make([][]string, 0, len(discounts))
	for _, d := range discounts {
		rows = append(rows, []string{
			uintString(d.DiscountID), d.DiscountName, d.TypeName,
			d.DiscountValue.StringFixed(2), d.MinOrderValue.StringFixed(2),
		})
	}
	s.UI.RenderTable("Available Discounts", []string{"ID", "Name", "Type", "Value", "Min Order"}, rows)
}

func (s *CheckoutService) renderBill(bill *entity.OrderBill) {
	s.UI.RenderTable("Order Bill",
		[]string{"Total", "Discount", "Final", "Status"},
		[][]string{{
			bill.TotalPrice.StringFixed(2),
			bill.DiscountApplied.StringFixed(2),
			bill.FinalPrice.StringFixed(2),
			bill.PaymentStatus,
		}})
}

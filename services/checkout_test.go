package services

import (
	"errors"
	"testing"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"
	"github.com/Shenile/cafe-crm/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB, ui Prompter) *CheckoutService {
	billing := repository.NewBillingRepository()
	loyalty := NewLoyaltyService(repository.NewLoyaltyRepository(), billing,
		dec("0.1"), dec("0.1"), zap.NewNop())
	reviews := NewFeedbackService(repository.NewFeedbackRepository(), ui)
	return NewCheckoutService(db,
		repository.NewOrderRepository(),
		repository.NewMenuRepository(),
		billing,
		repository.NewDiscountRepository(),
		loyalty, reviews, ui, zap.NewNop())
}

func seedFlatDiscount(t *testing.T, db *gorm.DB, value, minOrder int64) *entity.Discount {
	t.Helper()
	kind := entity.DiscountType{TypeName: entity.DiscountTypeFlat}
	if err := db.Create(&kind).Error; err != nil {
		t.Fatalf("seed discount type: %v", err)
	}
	d := entity.Discount{
		DiscountName:  "Flat off",
		TypeID:        kind.ID,
		DiscountValue: decimal.NewFromInt(value),
		MinOrderValue: decimal.NewFromInt(minOrder),
		IsActive:      true,
	}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed discount: %v", err)
	}
	return &d
}

func TestCheckout_WalkInPaidInFull(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)

	ui := &fakePrompter{
		// order? yes; add items? yes, then no; anon feedback? no; anon complaint? no
		bools: []bool{true, true, false, false, false},
		ints:  []int{int(item.ID), 3},
		forms: []map[string]any{
			{"amount_paid": dec("60"), "method": entity.PaymentMethodCash},
		},
	}
	svc := newCheckoutService(db, ui)

	if err := svc.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var order entity.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("no order persisted: %v", err)
	}
	if order.Status != entity.OrderStatusCompleted {
		t.Errorf("order status = %s, want completed", order.Status)
	}
	if order.CustomerID != nil {
		t.Errorf("walk-in order should have no customer")
	}

	var bill entity.OrderBill
	if err := db.Where("order_id = ?", order.ID).First(&bill).Error; err != nil {
		t.Fatalf("no bill persisted: %v", err)
	}
	if !bill.TotalPrice.Equal(dec("60")) || !bill.FinalPrice.Equal(dec("60")) {
		t.Errorf("bill totals = %s/%s, want 60/60", bill.TotalPrice, bill.FinalPrice)
	}
	if bill.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("payment status = %s, want paid", bill.PaymentStatus)
	}

	var payments int64
	db.Model(&entity.OrderPayment{}).Where("order_id = ?", order.ID).Count(&payments)
	if payments != 1 {
		t.Errorf("payment rows = %d, want 1", payments)
	}
}

func TestCheckout_PaymentStatusDerivation(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"full payment", "60", entity.PaymentStatusPaid},
		{"partial payment", "40", entity.PaymentStatusPartiallyPaid},
		{"zero payment", "0", entity.PaymentStatusPending},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			seedTiers(t, db)
			item := seedMenuItemAt(t, db, "Latte", 20)

			ui := &fakePrompter{
				bools: []bool{true, true, false, false, false},
				ints:  []int{int(item.ID), 3},
				forms: []map[string]any{
					{"amount_paid": dec(tc.amount), "method": entity.PaymentMethodCash},
				},
			}
			if err := newCheckoutService(db, ui).Run(nil); err != nil {
				t.Fatalf("Run: %v", err)
			}

			var bill entity.OrderBill
			if err := db.First(&bill).Error; err != nil {
				t.Fatalf("no bill: %v", err)
			}
			if bill.PaymentStatus != tc.want {
				t.Errorf("status = %s, want %s", bill.PaymentStatus, tc.want)
			}
		})
	}
}

func TestCheckout_OverpaymentRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)
	customer, _ := seedCustomerWithPoints(t, db, 0)

	ui := &fakePrompter{
		// order? yes; add items? yes, no; loyalty? no; discounts? no
		bools: []bool{true, true, false, false, false},
		ints:  []int{int(item.ID), 3},
		forms: []map[string]any{
			{"amount_paid": dec("150"), "method": entity.PaymentMethodCash},
		},
	}
	err := newCheckoutService(db, ui).Run(customer)
	if !errors.Is(err, apperr.ErrOverpayment) {
		t.Fatalf("want ErrOverpayment, got %v", err)
	}

	// nothing from the visit survives the rollback
	for model, name := range map[any]string{
		&entity.Order{}:        "orders",
		&entity.OrderItem{}:    "order items",
		&entity.OrderBill{}:    "bills",
		&entity.OrderPayment{}: "payments",
	} {
		var n int64
		db.Model(model).Count(&n)
		if n != 0 {
			t.Errorf("%s rows = %d after rollback, want 0", name, n)
		}
	}

	// the registration that preceded the visit is its own unit and stands
	var customers int64
	db.Model(&entity.Customer{}).Count(&customers)
	if customers != 1 {
		t.Errorf("customer rows = %d, want 1", customers)
	}
}

func TestCheckout_NegativePaymentRejected(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)

	ui := &fakePrompter{
		bools: []bool{true, true, false},
		ints:  []int{int(item.ID), 1},
		forms: []map[string]any{
			{"amount_paid": dec("-1"), "method": entity.PaymentMethodCash},
		},
	}
	err := newCheckoutService(db, ui).Run(nil)
	if !errors.Is(err, apperr.ErrNegativeAmount) {
		t.Fatalf("want ErrNegativeAmount, got %v", err)
	}
}

func TestCheckout_DeclinedVisitAborts(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)

	ui := &fakePrompter{bools: []bool{false}} // don't order anything
	err := newCheckoutService(db, ui).Run(nil)
	if !errors.Is(err, ErrVisitAborted) {
		t.Fatalf("want ErrVisitAborted, got %v", err)
	}

	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("order rows = %d, want 0", orders)
	}
}

// Full customer visit: catalog discount applied twice builds two ledger rows
// (no dedup), the bill folds all of them, and payment of the reduced final
// price triggers the reward accrual.
func TestCheckout_CustomerVisitWithStackedDiscounts(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)
	discount := seedFlatDiscount(t, db, 20, 50)
	customer, _ := seedCustomerWithPoints(t, db, 0)

	ui := &fakePrompter{
		bools: []bool{
			true,        // order something
			true, false, // one item line
			false,             // skip loyalty redemption
			true, true, false, // apply the same discount twice
			false, false, false, // feedback scopes
			false, false, false, // complaint scopes
		},
		ints: []int{int(item.ID), 3, int(discount.ID), int(discount.ID)},
		forms: []map[string]any{
			{"amount_paid": dec("20"), "method": entity.PaymentMethodCard},
		},
	}
	if err := newCheckoutService(db, ui).Run(customer); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var bill entity.OrderBill
	if err := db.First(&bill).Error; err != nil {
		t.Fatalf("no bill: %v", err)
	}
	if !bill.TotalPrice.Equal(dec("60")) {
		t.Errorf("total = %s, want 60", bill.TotalPrice)
	}
	if !bill.DiscountApplied.Equal(dec("40")) {
		t.Errorf("discount applied = %s, want 40", bill.DiscountApplied)
	}
	if !bill.FinalPrice.Equal(dec("20")) {
		t.Errorf("final = %s, want 20", bill.FinalPrice)
	}
	if bill.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("status = %s, want paid", bill.PaymentStatus)
	}

	var ledger int64
	db.Model(&entity.OrderDiscount{}).Where("order_id = ?", bill.OrderID).Count(&ledger)
	if ledger != 2 {
		t.Errorf("ledger rows = %d, want 2", ledger)
	}

	// earn fired on the paid bill: floor(60 * 0.1) on the original total
	var logs []entity.LoyaltyPointsLog
	db.Where("order_id = ? AND points_earned > 0", bill.OrderID).Find(&logs)
	if len(logs) != 1 || logs[0].PointsEarned != 6 {
		t.Fatalf("earn log = %+v, want one row with 6 points", logs)
	}
	var program entity.LoyaltyProgram
	db.Where("customer_id = ?", customer.ID).First(&program)
	if program.TotalPoints != 6 {
		t.Errorf("balance = %d, want 6", program.TotalPoints)
	}
}

// Redemption failures inside the loop are recoverable: the operator aborts
// the claim and the visit still commits.
func TestCheckout_RedeemAbortRecovers(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)
	customer, _ := seedCustomerWithPoints(t, db, 120)

	ui := &fakePrompter{
		bools: []bool{
			true,        // order something
			true, false, // one item line
			true,        // use loyalty points
			true,        // confirm the claim's cash value
			false,       // decline a retry, canceling the claim
			false,       // skip catalog discounts
			false, false, false, // feedback scopes
			false, false, false, // complaint scopes
		},
		// claim 30 points: below the minimum claim
		ints: []int{int(item.ID), 3, 30},
		forms: []map[string]any{
			{"amount_paid": dec("60"), "method": entity.PaymentMethodCash},
		},
	}
	if err := newCheckoutService(db, ui).Run(customer); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var bill entity.OrderBill
	if err := db.First(&bill).Error; err != nil {
		t.Fatalf("no bill: %v", err)
	}
	if !bill.FinalPrice.Equal(dec("60")) {
		t.Errorf("final = %s, want undiscounted 60", bill.FinalPrice)
	}
	var program entity.LoyaltyProgram
	db.Where("customer_id = ?", customer.ID).First(&program)
	if program.TotalPoints != 126 { // 120 intact, plus 6 earned
		t.Errorf("balance = %d, want 126", program.TotalPoints)
	}
}

// A redemption loop whose input dries up mid-claim must wind down, not spin:
// a drained script answers no to every retry prompt, so the claim cancels
// and the visit still commits.
func TestCheckout_RedeemInputEndsMidClaim(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)
	customer, _ := seedCustomerWithPoints(t, db, 120)

	ui := &fakePrompter{
		bools: []bool{
			true,        // order something
			true, false, // one item line
			true, // use loyalty points — then the script runs out
		},
		ints: []int{int(item.ID), 3},
		// no payment form either: the default zero payment leaves the bill pending
	}
	if err := newCheckoutService(db, ui).Run(customer); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var redemptions int64
	db.Model(&entity.OrderDiscount{}).Count(&redemptions)
	if redemptions != 0 {
		t.Errorf("discount ledger rows = %d, want 0", redemptions)
	}
	var program entity.LoyaltyProgram
	db.Where("customer_id = ?", customer.ID).First(&program)
	if program.TotalPoints != 120 { // pending bill earns nothing
		t.Errorf("balance = %d, want untouched 120", program.TotalPoints)
	}
}

// The cumulative transaction view re-renders after every station.
func TestCheckout_ProgressRenderedBetweenSteps(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)
	item := seedMenuItemAt(t, db, "Latte", 20)

	ui := &fakePrompter{
		bools: []bool{true, true, false, false, false},
		ints:  []int{int(item.ID), 3},
		forms: []map[string]any{
			{"amount_paid": dec("60"), "method": entity.PaymentMethodCash},
		},
	}
	if err := newCheckoutService(db, ui).Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	counts := map[string]int{}
	for _, title := range ui.tables {
		counts[title]++
	}
	// six stations between order creation and reward settlement
	if counts["Transaction Details"] != 6 {
		t.Errorf("progress views = %d, want 6 (titles: %v)", counts["Transaction Details"], ui.tables)
	}
	if counts["Order Items"] == 0 {
		t.Errorf("order items never re-rendered (titles: %v)", ui.tables)
	}
	if counts["Order Bill"] == 0 {
		t.Errorf("bill never re-rendered (titles: %v)", ui.tables)
	}
}

// An order with zero items still proceeds through billing and payment.
func TestCheckout_EmptyOrderProceeds(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)

	ui := &fakePrompter{
		// order? yes; add items? no; anon feedback/complaint? no
		bools: []bool{true, false, false, false},
		forms: []map[string]any{
			{"amount_paid": dec("0"), "method": entity.PaymentMethodCash},
		},
	}
	if err := newCheckoutService(db, ui).Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var bill entity.OrderBill
	if err := db.First(&bill).Error; err != nil {
		t.Fatalf("no bill: %v", err)
	}
	if !bill.TotalPrice.IsZero() || !bill.FinalPrice.IsZero() {
		t.Errorf("bill totals = %s/%s, want 0/0", bill.TotalPrice, bill.FinalPrice)
	}
}

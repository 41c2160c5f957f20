package services

import (
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"
	"github.com/Shenile/cafe-crm/repository"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceLookup resolves a menu item's unit price.
type PriceLookup func(itemID uint) (decimal.Decimal, error)

// ComputeSubtotal sums quantity * unit price over all line items.
func ComputeSubtotal(items []entity.OrderItem, priceOf PriceLookup) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, it := range items {
		unit, err := priceOf(it.ItemID)
		if err != nil {
			return decimal.Zero, err
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return subtotal, nil
}

// ApplyDiscount returns the price after one discount rule.
//
// A flat discount larger than the total zeroes the price rather than
// erroring. A percentage must be in (0, 100].
func ApplyDiscount(total, value decimal.Decimal, discountType string) (decimal.Decimal, error) {
	switch discountType {
	case entity.DiscountTypeFlat:
		if value.LessThanOrEqual(total) {
			return total.Sub(value), nil
		}
		return decimal.Zero, nil
	case entity.DiscountTypePercentage:
		if value.IsPositive() && value.LessThanOrEqual(hundred) {
			return total.Sub(total.Mul(value).Div(hundred)), nil
		}
		return decimal.Zero, fmt.Errorf("%w: percentage discount must be in (0, 100], got %s",
			apperr.ErrInvalidArgument, value)
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown discount type %q",
			apperr.ErrInvalidArgument, discountType)
	}
}

// EligibleDiscounts keeps active discounts whose minimum order value the
// subtotal meets, preserving the source order (discount id ascending).
func EligibleDiscounts(rows []repository.DiscountRow, subtotal decimal.Decimal) []repository.DiscountRow {
	out := make([]repository.DiscountRow, 0, len(rows))
	for _, d := range rows {
		if d.IsActive && d.MinOrderValue.LessThanOrEqual(subtotal) {
			out = append(out, d)
		}
	}
	return out
}

// SumDiscountAmounts folds the ledger rows into the bill's cumulative
// discount.
func SumDiscountAmounts(rows []entity.OrderDiscount) decimal.Decimal {
	total := decimal.Zero
	for _, od := range rows {
		total = total.Add(od.DiscountAmount)
	}
	return total
}

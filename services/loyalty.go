package services

import (
	"fmt"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"
	"github.com/Shenile/cafe-crm/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Redemption must claim strictly more than this many points.
	minClaimPoints = 50
	// Orders at or under this total earn nothing.
	earnMinTotal = 10
)

type LoyaltyService struct {
	Repo    *repository.LoyaltyRepository
	Billing *repository.BillingRepository

	ConversionRate decimal.Decimal // points -> cash on redemption
	EarnRate       decimal.Decimal // cash -> points on payment

	Log *zap.Logger
}

func NewLoyaltyService(repo *repository.LoyaltyRepository, billing *repository.BillingRepository,
	conversionRate, earnRate decimal.Decimal, log *zap.Logger) *LoyaltyService {
	return &LoyaltyService{
		Repo:           repo,
		Billing:        billing,
		ConversionRate: conversionRate,
		EarnRate:       earnRate,
		Log:            log,
	}
}

// ClassifyTier scans tiers in max_points ascending order and returns the
// first tier the balance falls under. The comparison is strictly less-than:
// a balance exactly at a ceiling belongs to the next tier. A balance past
// every ceiling lands in the last (unbounded) tier.
func ClassifyTier(points int, tiers []entity.LoyaltyTier) (entity.LoyaltyTier, error) {
	if len(tiers) == 0 {
		return entity.LoyaltyTier{}, fmt.Errorf("%w: no loyalty tiers configured", apperr.ErrNotFound)
	}
	for _, t := range tiers {
		if points < t.MaxPoints {
			return t, nil
		}
	}
	return tiers[len(tiers)-1], nil
}

// PointsToCash converts a points amount to its cash value.
func PointsToCash(points int, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Mul(rate)
}

// AddPoints moves a program's balance by delta (positive or negative) and
// reclassifies the tier from the new balance in the same write.
func (s *LoyaltyService) AddPoints(db *gorm.DB, loyaltyID uint, delta int) (*entity.LoyaltyProgram, error) {
	program, err := s.Repo.GetProgram(db, loyaltyID)
	if err != nil {
		return nil, err
	}

	newTotal := program.TotalPoints + delta
	if newTotal < 0 {
		return nil, fmt.Errorf("%w: balance %d, requested %d",
			apperr.ErrInsufficientPoints, program.TotalPoints, -delta)
	}

	tiers, err := s.Repo.ListTiers(db)
	if err != nil {
		return nil, err
	}
	tier, err := ClassifyTier(newTotal, tiers)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdatePoints(db, program.ID, newTotal, tier.ID); err != nil {
		return nil, err
	}
	return s.Repo.GetProgram(db, loyaltyID)
}

// EarnPoints accrues reward points for a paid order and returns the message
// shown to the operator, or "" when the order earns nothing.
//
// The earn log is upserted: running the reward step twice for one order
// updates the existing row instead of inserting a second one.
func (s *LoyaltyService) EarnPoints(db *gorm.DB, orderID, customerID uint) (string, error) {
	bill, err := s.Billing.GetBill(db, orderID)
	if err != nil {
		return "", err
	}
	if bill.PaymentStatus != entity.PaymentStatusPaid ||
		!bill.TotalPrice.GreaterThan(decimal.NewFromInt(earnMinTotal)) {
		return "", nil
	}

	pointsEarned := int(bill.TotalPrice.Mul(s.EarnRate).IntPart())
	s.Log.Info("reward points earned",
		zap.Uint("customer_id", customerID),
		zap.Uint("order_id", orderID),
		zap.Int("points", pointsEarned))

	program, err := s.Repo.GetProgramByCustomer(db, customerID)
	if err != nil {
		return "", err
	}
	if _, err := s.AddPoints(db, program.ID, pointsEarned); err != nil {
		return "", err
	}

	existing, err := s.Repo.GetEarnLog(db, orderID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if err := s.Repo.UpdateEarnLog(db, existing.ID, pointsEarned); err != nil {
			return "", err
		}
	} else {
		log := entity.LoyaltyPointsLog{
			CustomerID:   customerID,
			OrderID:      orderID,
			PointsEarned: pointsEarned,
		}
		if err := s.Repo.CreateLog(db, &log); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("You have earned %d points in this transaction.", pointsEarned), nil
}

// RedeemPoints converts loyalty points into a discount on the order's bill.
// It records the ledger row and the redemption log, decrements the balance
// and reclassifies the tier. Both failure modes are distinct outcomes the
// caller may recover from at the prompt.
func (s *LoyaltyService) RedeemPoints(db *gorm.DB, orderID, customerID uint, pointsToClaim int) (decimal.Decimal, error) {
	program, err := s.Repo.GetProgramByCustomer(db, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	if pointsToClaim > program.TotalPoints {
		return decimal.Zero, fmt.Errorf("%w: have %d, claimed %d",
			apperr.ErrInsufficientPoints, program.TotalPoints, pointsToClaim)
	}
	if pointsToClaim <= minClaimPoints {
		return decimal.Zero, fmt.Errorf("%w: must claim more than %d points",
			apperr.ErrBelowMinimumClaim, minClaimPoints)
	}

	amount := PointsToCash(pointsToClaim, s.ConversionRate)

	claimed := pointsToClaim
	od := entity.OrderDiscount{
		OrderID:           orderID,
		LoyaltyPointsUsed: &claimed,
		DiscountAmount:    amount,
	}
	if err := s.Billing.AddOrderDiscount(db, &od); err != nil {
		return decimal.Zero, err
	}

	if _, err := s.AddPoints(db, program.ID, -pointsToClaim); err != nil {
		return decimal.Zero, err
	}

	log := entity.LoyaltyPointsLog{
		CustomerID:     customerID,
		OrderID:        orderID,
		PointsRedeemed: pointsToClaim,
	}
	if err := s.Repo.CreateLog(db, &log); err != nil {
		return decimal.Zero, err
	}

	s.Log.Info("loyalty points redeemed",
		zap.Uint("customer_id", customerID),
		zap.Uint("order_id", orderID),
		zap.Int("points", pointsToClaim),
		zap.String("amount", amount.String()))
	return amount, nil
}

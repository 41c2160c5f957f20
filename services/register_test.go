package services

import (
	"testing"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRegistrationService(db *gorm.DB, ui Prompter, newbiePoints int) *RegistrationService {
	loyaltyRepo := repository.NewLoyaltyRepository()
	points := NewLoyaltyService(loyaltyRepo, repository.NewBillingRepository(),
		dec("0.1"), dec("0.1"), zap.NewNop())
	return NewRegistrationService(db, repository.NewCustomerRepository(),
		loyaltyRepo, points, newbiePoints, ui, zap.NewNop())
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)

	ui := &fakePrompter{
		forms: []map[string]any{
			{"name": "Ravi", "mobile_no": "5552222", "email": "ravi@example.com"},
		},
	}
	svc := newRegistrationService(db, ui, 100)

	customer, err := svc.Register()
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if customer.Name != "Ravi" {
		t.Errorf("name = %q, want Ravi", customer.Name)
	}

	program, err := svc.Loyalty.GetProgramByCustomer(db, customer.ID)
	if err != nil {
		t.Fatalf("loyalty program not created: %v", err)
	}
	if program.TotalPoints != 100 {
		t.Errorf("welcome points = %d, want 100", program.TotalPoints)
	}

	// 100 points sits exactly on Bronze's ceiling and classifies upward
	var tier entity.LoyaltyTier
	if err := db.First(&tier, program.TierID).Error; err != nil {
		t.Fatalf("load tier: %v", err)
	}
	if tier.TierName != "Silver" {
		t.Errorf("tier = %s, want Silver", tier.TierName)
	}
}

func TestLogin_MissOffersRegistration(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)

	ui := &fakePrompter{
		ints:  []int{0, 42},     // search by ID, then the missing id
		bools: []bool{true},     // register instead? yes
		forms: []map[string]any{{"name": "New", "mobile_no": "5553333", "email": ""}},
	}
	svc := newRegistrationService(db, ui, 50)

	customer, err := svc.Login()
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if customer == nil || customer.Name != "New" {
		t.Fatalf("expected registration fallback, got %+v", customer)
	}
}

func TestLogin_MissDeclined(t *testing.T) {
	db := newTestDB(t)
	seedTiers(t, db)

	ui := &fakePrompter{
		ints:  []int{0, 42},
		bools: []bool{false}, // decline registration
	}
	svc := newRegistrationService(db, ui, 50)

	customer, err := svc.Login()
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if customer != nil {
		t.Errorf("expected nil customer, got %+v", customer)
	}
}

package services

import (
	"errors"

	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/pkg/apperr"
	"github.com/Shenile/cafe-crm/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Registration form, resolved once.
var customerForm = []Field{
	{Name: "name", Label: "Name", Kind: FieldString},
	{Name: "mobile_no", Label: "Mobile number", Kind: FieldString},
	{Name: "email", Label: "Email", Kind: FieldString},
}

type RegistrationService struct {
	DB        *gorm.DB
	Customers *repository.CustomerRepository
	Loyalty   *repository.LoyaltyRepository
	Points    *LoyaltyService

	NewbiePoints int

	UI  Prompter
	Log *zap.Logger
}

func NewRegistrationService(db *gorm.DB, customers *repository.CustomerRepository,
	loyalty *repository.LoyaltyRepository, points *LoyaltyService,
	newbiePoints int, ui Prompter, log *zap.Logger) *RegistrationService {
	return &RegistrationService{
		DB:           db,
		Customers:    customers,
		Loyalty:      loyalty,
		Points:       points,
		NewbiePoints: newbiePoints,
		UI:           ui,
		Log:          log,
	}
}

// Register creates the customer, opens their loyalty program and grants the
// welcome points. It runs in its own transaction, independent of any order
// that follows: the registration commits or rolls back alone.
func (s *RegistrationService) Register() (*entity.Customer, error) {
	data := s.UI.CollectForm("New Customer", customerForm)

	var created *entity.Customer
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c := entity.Customer{
			Name:     data["name"].(string),
			MobileNo: data["mobile_no"].(string),
			Email:    data["email"].(string),
		}
		if err := s.Customers.Create(tx, &c); err != nil {
			return err
		}

		tiers, err := s.Loyalty.ListTiers(tx)
		if err != nil {
			return err
		}
		tier, err := ClassifyTier(0, tiers)
		if err != nil {
			return err
		}
		program := entity.LoyaltyProgram{CustomerID: c.ID, TotalPoints: 0, TierID: tier.ID}
		if err := s.Loyalty.CreateProgram(tx, &program); err != nil {
			return err
		}
		if _, err := s.Points.AddPoints(tx, program.ID, s.NewbiePoints); err != nil {
			return err
		}

		created = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("customer registered",
		zap.Uint("customer_id", created.ID),
		zap.Int("welcome_points", s.NewbiePoints))
	return created, nil
}

// Login resolves an existing customer by id, mobile number or name. A miss
// offers registration instead.
func (s *RegistrationService) Login() (*entity.Customer, error) {
	choice := s.UI.PresentMenu("Search By", []string{"ID", "Mobile Number", "Name (not recommended)"})

	var column string
	var value any
	switch choice {
	case 0:
		column = repository.CustomerByID
		value = s.UI.PromptInt("Enter the customer id: ")
	case 1:
		column = repository.CustomerByMobile
		value = s.UI.PromptString("Enter the mobile number: ")
	case 2:
		column = repository.CustomerByName
		value = s.UI.PromptString("Enter the name: ")
	default:
		return nil, nil
	}

	c, err := s.Customers.FindBy(s.DB, column, value)
	if errors.Is(err, apperr.ErrNotFound) {
		s.UI.Say("Customer doesn't exist.")
		if s.UI.ConfirmYesNo("Do you want to register instead?") {
			return s.Register()
		}
		return nil, nil
	}
	return c, err
}

// SelectCustomer runs the front-desk menu and returns the customer for this
// visit, or nil for an anonymous walk-in.
func (s *RegistrationService) SelectCustomer() (*entity.Customer, error) {
	s.showCustomers()

	switch s.UI.PresentMenu("Customer Menu", []string{
		"Customer Login",
		"Customer Register",
		"Proceed to Order",
	}) {
	case 0:
		return s.Login()
	case 1:
		return s.Register()
	default:
		return nil, nil
	}
}

func (s *RegistrationService) showCustomers() {
	customers, err := s.Customers.List(s.DB)
	if err != nil || len(customers) == 0 {
		return
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{uintString(c.ID), c.Name, c.MobileNo})
	}
	s.UI.RenderTable("Available Customers", []string{"ID", "Name", "Mobile"}, rows)
}

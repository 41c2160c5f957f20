package services

import (
	"github.com/Shenile/cafe-crm/entity"
	"github.com/Shenile/cafe-crm/repository"

	"gorm.io/gorm"
)

var feedbackForm = []Field{
	{Name: "message", Label: "Your feedback", Kind: FieldString},
	{Name: "rating", Label: "Rating (1-5)", Kind: FieldInteger},
}

var complaintForm = []Field{
	{Name: "message", Label: "Your complaint", Kind: FieldString},
}

type FeedbackService struct {
	Repo *repository.FeedbackRepository
	UI   Prompter
}

func NewFeedbackService(repo *repository.FeedbackRepository, ui Prompter) *FeedbackService {
	return &FeedbackService{Repo: repo, UI: ui}
}

// CollectFeedbacks offers the three feedback scopes in turn: this order,
// the customer personally, and anonymous.
func (s *FeedbackService) CollectFeedbacks(db *gorm.DB, customerID, orderID *uint) error {
	if customerID != nil && orderID != nil {
		if s.UI.ConfirmYesNo("Do you want to leave a feedback for this order?") {
			if err := s.addFeedback(db, customerID, orderID); err != nil {
				return err
			}
		}
	}
	if customerID != nil {
		if s.UI.ConfirmYesNo("Do you want to leave a personal feedback?") {
			if err := s.addFeedback(db, customerID, nil); err != nil {
				return err
			}
		}
	}
	if s.UI.ConfirmYesNo("Do you want to leave an anonymous feedback?") {
		if err := s.addFeedback(db, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

// CollectComplaints mirrors CollectFeedbacks for complaints.
func (s *FeedbackService) CollectComplaints(db *gorm.DB, customerID, orderID *uint) error {
	if customerID != nil && orderID != nil {
		if s.UI.ConfirmYesNo("Do you have any complaint for this order?") {
			if err := s.addComplaint(db, customerID, orderID); err != nil {
				return err
			}
		}
	}
	if customerID != nil {
		if s.UI.ConfirmYesNo("Do you have any personal complaint?") {
			if err := s.addComplaint(db, customerID, nil); err != nil {
				return err
			}
		}
	}
	if s.UI.ConfirmYesNo("Do you want to leave an anonymous complaint?") {
		if err := s.addComplaint(db, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *FeedbackService) addFeedback(db *gorm.DB, customerID, orderID *uint) error {
	data := s.UI.CollectForm("Feedback", feedbackForm)
	categoryID, err := s.pickCategory(db)
	if err != nil {
		return err
	}
	f := entity.Feedback{
		Message:    data["message"].(string),
		Rating:     data["rating"].(int),
		CustomerID: customerID,
		OrderID:    orderID,
		CategoryID: categoryID,
	}
	return s.Repo.CreateFeedback(db, &f)
}

func (s *FeedbackService) addComplaint(db *gorm.DB, customerID, orderID *uint) error {
	data := s.UI.CollectForm("Complaint", complaintForm)
	categoryID, err := s.pickCategory(db)
	if err != nil {
		return err
	}
	c := entity.Complaint{
		Message:    data["message"].(string),
		CustomerID: customerID,
		OrderID:    orderID,
		CategoryID: categoryID,
	}
	return s.Repo.CreateComplaint(db, &c)
}

func (s *FeedbackService) pickCategory(db *gorm.DB) (uint, error) {
	categories, err := s.Repo.ListCategories(db)
	if err != nil {
		return 0, err
	}
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{uintString(c.ID), c.CategoryName})
	}
	s.UI.RenderTable("Review Categories", []string{"ID", "Category"}, rows)
	return uint(s.UI.PromptInt("Enter the category id: ")), nil
}

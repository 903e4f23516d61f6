package service

import (
	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// CreateExpense records a cost against a vehicle.
func (s *Service) CreateExpense(vehicleID int64, category string, amount decimal.Decimal, date models.Date) (*models.Expense, error) {
	if !amount.IsPositive() {
		return nil, apperrors.Validationf("expense amount must be positive")
	}

	e := &models.Expense{VehicleID: vehicleID, Category: category, Amount: amount, Date: date}
	if err := s.store.CreateExpense(e); err != nil {
		return nil, err
	}

	s.log.Infof("Expense of %s recorded for vehicle %d", amount.StringFixed(2), vehicleID)
	return e, nil
}

// ListExpenses returns all expenses with their vehicle brand.
func (s *Service) ListExpenses() ([]models.ExpenseDetail, error) {
	return s.store.ListExpenses()
}

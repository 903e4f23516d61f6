package service

import (
	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// CreateCredit registers the purchase loan of a vehicle. A vehicle
// carries at most one credit.
func (s *Service) CreateCredit(vehicleID int64, totalAmount, mensualite decimal.Decimal) (*models.Credit, error) {
	if !totalAmount.IsPositive() {
		return nil, apperrors.Validationf("total amount must be positive")
	}
	if !mensualite.IsPositive() {
		return nil, apperrors.Validationf("mensualite must be positive")
	}
	if mensualite.GreaterThan(totalAmount) {
		return nil, apperrors.Validationf("mensualite cannot exceed the total amount")
	}

	c := &models.Credit{VehicleID: vehicleID, TotalAmount: totalAmount, Mensualite: mensualite}
	if err := s.store.CreateCredit(c); err != nil {
		return nil, err
	}

	s.log.Infof("Credit %d created for vehicle %d", c.ID, c.VehicleID)
	return c, nil
}

// ListCredits returns all credits with their vehicle.
func (s *Service) ListCredits() ([]models.CreditDetail, error) {
	return s.store.ListCredits()
}

// PayCredit consumes exactly one monthly installment. Only the running
// total moves; no calendar month is recorded.
func (s *Service) PayCredit(id int64) (*models.Credit, error) {
	c, err := s.store.PayCreditInstallment(id)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Installment paid on credit %d, total paid %s", c.ID, c.AmountPaid.StringFixed(2))
	return c, nil
}

package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

// NewInsuranceInput carries the fields of a new policy.
type NewInsuranceInput struct {
	VehicleID    int64
	Insurer      string
	TotalPremium decimal.Decimal
	AmountPaid   decimal.Decimal
	StartDate    models.Date
	EndDate      models.Date
}

// CreateInsurance registers an insurance policy on a vehicle.
func (s *Service) CreateInsurance(in NewInsuranceInput) (*models.InsurancePolicy, error) {
	in.Insurer = strings.TrimSpace(in.Insurer)
	if in.Insurer == "" {
		return nil, apperrors.Validationf("insurer is required")
	}
	if in.TotalPremium.IsNegative() {
		return nil, apperrors.Validationf("total premium cannot be negative")
	}
	if in.AmountPaid.IsNegative() {
		return nil, apperrors.Validationf("amount paid cannot be negative")
	}
	if in.AmountPaid.GreaterThan(in.TotalPremium) {
		return nil, apperrors.Validationf("amount paid cannot exceed total premium")
	}

	p := &models.InsurancePolicy{
		VehicleID:    in.VehicleID,
		Insurer:      in.Insurer,
		TotalPremium: in.TotalPremium,
		AmountPaid:   in.AmountPaid,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if err := s.store.CreateInsurance(p); err != nil {
		return nil, err
	}
	p.Reste = p.Remaining()

	s.log.Infof("Insurance policy %d created for vehicle %d", p.ID, p.VehicleID)
	return p, nil
}

// ListInsurance returns all policies.
func (s *Service) ListInsurance() ([]models.InsurancePolicy, error) {
	return s.store.ListInsurance()
}

// PayInsurance applies a partial payment to a policy premium.
func (s *Service) PayInsurance(id int64, amount decimal.Decimal) (*models.InsurancePolicy, error) {
	if !amount.IsPositive() {
		return nil, apperrors.Validationf("payment amount must be positive")
	}

	p, err := s.store.AddInsurancePayment(id, amount)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Payment of %s applied to insurance policy %d", amount.StringFixed(2), id)
	return p, nil
}

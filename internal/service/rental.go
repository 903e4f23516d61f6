package service

import (
	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// NewRentalInput carries the fields of a booking request.
type NewRentalInput struct {
	VehicleID  int64
	ClientID   *int64
	StartDate  models.Date
	Days       int
	ReturnDate models.Date
	TotalPrice decimal.Decimal
	AmountPaid decimal.Decimal
	Deposit    string
}

// CreateRental books a vehicle. The vehicle must exist and be
// Available; booking an already-rented vehicle is a conflict.
func (s *Service) CreateRental(in NewRentalInput) (*models.Rental, error) {
	if in.Days <= 0 {
		return nil, apperrors.Validationf("days must be positive")
	}
	if in.TotalPrice.IsNegative() {
		return nil, apperrors.Validationf("total price cannot be negative")
	}
	if in.AmountPaid.IsNegative() {
		return nil, apperrors.Validationf("amount paid cannot be negative")
	}
	if in.AmountPaid.GreaterThan(in.TotalPrice) {
		return nil, apperrors.Validationf("amount paid cannot exceed total price")
	}

	rent := &models.Rental{
		VehicleID:  in.VehicleID,
		ClientID:   in.ClientID,
		StartDate:  in.StartDate,
		Days:       in.Days,
		ReturnDate: in.ReturnDate,
		TotalPrice: in.TotalPrice,
		AmountPaid: in.AmountPaid,
		Deposit:    in.Deposit,
	}
	if err := s.store.CreateRental(rent); err != nil {
		return nil, err
	}

	s.log.Infof("Rental %d created for vehicle %d", rent.ID, rent.VehicleID)
	return rent, nil
}

// ListRentals returns a page of rentals, newest first.
func (s *Service) ListRentals(page, limit int) ([]models.RentalDetail, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.store.ListRentals(page, limit)
}

// PayRental applies a partial payment to a rental balance.
func (s *Service) PayRental(id int64, amount decimal.Decimal) (*models.Rental, error) {
	if !amount.IsPositive() {
		return nil, apperrors.Validationf("payment amount must be positive")
	}

	rent, err := s.store.AddRentalPayment(id, amount)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Payment of %s applied to rental %d", amount.StringFixed(2), id)
	return rent, nil
}

// ReturnRental closes a rental: the contract moves to Completed and
// the vehicle returns to the available fleet.
func (s *Service) ReturnRental(id int64) (*models.Rental, error) {
	rent, err := s.store.CloseRental(id)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Rental %d completed, vehicle %d available", rent.ID, rent.VehicleID)
	return rent, nil
}

// DeleteRental removes a rental record. An ongoing rental frees its
// vehicle on deletion.
func (s *Service) DeleteRental(id int64) error {
	if err := s.store.DeleteRental(id); err != nil {
		return err
	}

	s.log.Infof("Rental %d deleted", id)
	return nil
}

package service

import (
	"github.com/shopspring/decimal"
	"github.com/ybenali/rental-service/internal/models"
)

// Dashboard computes the fleet and financial rollup from a fresh
// snapshot of current entity state. Nothing is cached.
func (s *Service) Dashboard() (*models.Dashboard, error) {
	vehicles, err := s.store.ListVehicles()
	if err != nil {
		return nil, err
	}
	rentals, err := s.store.ListAllRentals()
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses()
	if err != nil {
		return nil, err
	}
	policies, err := s.store.ListInsurance()
	if err != nil {
		return nil, err
	}
	credits, err := s.store.ListCredits()
	if err != nil {
		return nil, err
	}

	return BuildDashboard(vehicles, rentals, expenses, policies, credits), nil
}

// BuildDashboard aggregates current entity state into the dashboard
// figures.
//
// Revenue counts cash actually received over all rentals. Receivables
// cover ongoing rentals only: a completed rental with an unpaid balance
// drops out of the figure, which matches how the agency reads it even
// though the shortfall remains real money. Charges mix bases on
// purpose: expenses count in full while insurance and credit count only
// what was paid so far.
func BuildDashboard(vehicles []models.Vehicle, rentals []models.Rental,
	expenses []models.ExpenseDetail, policies []models.InsurancePolicy,
	credits []models.CreditDetail) *models.Dashboard {

	d := &models.Dashboard{TotalVehicles: len(vehicles)}
	for _, v := range vehicles {
		if v.Status == models.VehicleRented {
			d.RentedVehicles++
		}
	}
	d.AvailableVehicles = d.TotalVehicles - d.RentedVehicles

	revenue := decimal.Zero
	receivables := decimal.Zero
	for _, r := range rentals {
		revenue = revenue.Add(r.AmountPaid)
		if r.Status == models.RentalOngoing {
			receivables = receivables.Add(r.TotalPrice.Sub(r.AmountPaid))
		}
	}

	charges := decimal.Zero
	for _, e := range expenses {
		charges = charges.Add(e.Amount)
	}
	for _, p := range policies {
		charges = charges.Add(p.AmountPaid)
	}
	for _, c := range credits {
		charges = charges.Add(c.AmountPaid)
	}

	d.Revenue = revenue.Round(2)
	d.Receivables = receivables.Round(2)
	d.Charges = charges.Round(2)
	d.NetProfit = revenue.Sub(charges).Round(2)
	return d
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ybenali/rental-service/internal/models"
)

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil, nil, nil, nil, nil)

	assert.Equal(t, 0, d.TotalVehicles)
	assert.Equal(t, 0, d.RentedVehicles)
	assert.Equal(t, 0, d.AvailableVehicles)
	assert.True(t, d.Revenue.IsZero())
	assert.True(t, d.Receivables.IsZero())
	assert.True(t, d.Charges.IsZero())
	assert.True(t, d.NetProfit.IsZero())
}

func TestBuildDashboardSums(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: 1, Status: models.VehicleRented},
		{ID: 2, Status: models.VehicleAvailable},
		{ID: 3, Status: models.VehicleAvailable},
	}
	rentals := []models.Rental{
		{VehicleID: 1, TotalPrice: money("500.00"), AmountPaid: money("100.00"), Status: models.RentalOngoing},
		{VehicleID: 2, TotalPrice: money("300.00"), AmountPaid: money("250.50"), Status: models.RentalCompleted},
		{VehicleID: 3, TotalPrice: money("100.00"), AmountPaid: money("0"), Status: models.RentalCompleted},
	}
	expenses := []models.ExpenseDetail{
		{Expense: models.Expense{Amount: money("80.00")}},
		{Expense: models.Expense{Amount: money("20.25")}},
	}
	policies := []models.InsurancePolicy{
		{TotalPremium: money("1200.00"), AmountPaid: money("400.00")},
	}
	credits := []models.CreditDetail{
		{Credit: models.Credit{TotalAmount: money("18000"), AmountPaid: money("1500.00")}},
	}

	d := BuildDashboard(vehicles, rentals, expenses, policies, credits)

	assert.Equal(t, 3, d.TotalVehicles)
	assert.Equal(t, 1, d.RentedVehicles)
	assert.Equal(t, 2, d.AvailableVehicles)
	// Revenue is cash received across all rentals.
	assert.True(t, d.Revenue.Equal(money("350.50")), "revenue = %s", d.Revenue)
	// Receivables cover ongoing rentals only; the completed ones with
	// unpaid balances drop out.
	assert.True(t, d.Receivables.Equal(money("400.00")), "receivables = %s", d.Receivables)
	// Charges: full expenses, paid share of insurance and credit.
	assert.True(t, d.Charges.Equal(money("2000.25")), "charges = %s", d.Charges)
	assert.True(t, d.NetProfit.Equal(money("-1649.75")), "net profit = %s", d.NetProfit)
}

func TestDashboardIdempotent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	v, err := svc.CreateVehicle("Dacia", "999-L-3")
	require.NoError(t, err)
	_, err = svc.CreateRental(newRentalInput(v.ID, "500.00"))
	require.NoError(t, err)
	_, err = svc.CreateExpense(v.ID, "oil change", money("45.90"), models.NewDate(2026, time.August, 15))
	require.NoError(t, err)

	first, err := svc.Dashboard()
	require.NoError(t, err)
	second, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, first.TotalVehicles, second.TotalVehicles)
	assert.True(t, first.Revenue.Equal(second.Revenue))
	assert.True(t, first.Receivables.Equal(second.Receivables))
	assert.True(t, first.Charges.Equal(second.Charges))
	assert.True(t, first.NetProfit.Equal(second.NetProfit))
}

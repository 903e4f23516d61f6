package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ybenali/rental-service/internal/apperrors"
	"github.com/ybenali/rental-service/internal/models"
)

func newInsuranceInput(vehicleID int64, premium string) NewInsuranceInput {
	return NewInsuranceInput{
		VehicleID:    vehicleID,
		Insurer:      "Wafa Assurance",
		TotalPremium: money(premium),
		AmountPaid:   money("0"),
		StartDate:    models.NewDate(2026, time.January, 1),
		EndDate:      models.NewDate(2026, time.December, 31),
	}
}

func TestCreateInsuranceValidation(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	v, err := svc.CreateVehicle("Dacia", "123-N-5")
	require.NoError(t, err)

	var validation *apperrors.ValidationError

	in := newInsuranceInput(v.ID, "1200.00")
	in.Insurer = "  "
	_, err = svc.CreateInsurance(in)
	require.ErrorAs(t, err, &validation)

	in = newInsuranceInput(v.ID, "1200.00")
	in.AmountPaid = money("1500.00")
	_, err = svc.CreateInsurance(in)
	require.ErrorAs(t, err, &validation)

	in = newInsuranceInput(v.ID, "-1.00")
	_, err = svc.CreateInsurance(in)
	require.ErrorAs(t, err, &validation)
}

func TestCreateInsuranceVehicleNotFound(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.CreateInsurance(newInsuranceInput(99, "1200.00"))
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPayInsurancePartialPayments(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	v, err := svc.CreateVehicle("Dacia", "456-O-6")
	require.NoError(t, err)

	p, err := svc.CreateInsurance(newInsuranceInput(v.ID, "1200.00"))
	require.NoError(t, err)
	assert.True(t, p.Reste.Equal(money("1200.00")))

	paid, err := svc.PayInsurance(p.ID, money("400.00"))
	require.NoError(t, err)
	assert.True(t, paid.AmountPaid.Equal(money("400.00")))
	assert.True(t, paid.Reste.Equal(money("800.00")), "reste = %s", paid.Reste)

	paid, err = svc.PayInsurance(p.ID, money("800.00"))
	require.NoError(t, err)
	assert.True(t, paid.Reste.IsZero())
}

func TestPayInsuranceRejectsOverpaymentAndBadAmounts(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	v, err := svc.CreateVehicle("Dacia", "789-P-7")
	require.NoError(t, err)

	p, err := svc.CreateInsurance(newInsuranceInput(v.ID, "1200.00"))
	require.NoError(t, err)

	var validation *apperrors.ValidationError

	_, err = svc.PayInsurance(p.ID, money("0"))
	require.ErrorAs(t, err, &validation)

	_, err = svc.PayInsurance(p.ID, money("-50.00"))
	require.ErrorAs(t, err, &validation)

	_, err = svc.PayInsurance(p.ID, money("1200.01"))
	require.ErrorAs(t, err, &validation)

	// Rejected payments leave the balance untouched.
	policies, err := svc.ListInsurance()
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.True(t, policies[0].AmountPaid.IsZero())
	assert.True(t, policies[0].Reste.Equal(money("1200.00")))
}

func TestPayInsuranceNotFound(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.PayInsurance(42, money("100.00"))
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

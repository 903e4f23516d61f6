package models

import "github.com/shopspring/decimal"

// InsurancePolicy represents an insurance contract on a vehicle. The
// premium is paid off in arbitrary partial payments.
type InsurancePolicy struct {
	ID           int64           `json:"id"`
	VehicleID    int64           `json:"vehicle_id"`
	Insurer      string          `json:"insurer"`
	TotalPremium decimal.Decimal `json:"total_premium"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	StartDate    Date            `json:"start_date"`
	EndDate      Date            `json:"end_date"`
	Reste        decimal.Decimal `json:"reste"`
}

// Remaining is the unpaid share of the premium, rounded for display.
func (p *InsurancePolicy) Remaining() decimal.Decimal {
	return p.TotalPremium.Sub(p.AmountPaid).Round(2)
}

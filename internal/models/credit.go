package models

import "github.com/shopspring/decimal"

// Credit represents the purchase loan on a vehicle. One active loan
// per vehicle; paying advances the running total by exactly one
// mensualite, the calendar month is not tracked.
type Credit struct {
	ID          int64           `json:"id"`
	VehicleID   int64           `json:"vehicle_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Mensualite  decimal.Decimal `json:"mensualite"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
}

// Remaining is the unpaid share of the loan, rounded for display.
func (c *Credit) Remaining() decimal.Decimal {
	return c.TotalAmount.Sub(c.AmountPaid).Round(2)
}

// CreditDetail is a credit joined with its vehicle for listings.
type CreditDetail struct {
	Credit
	Brand string          `json:"brand"`
	Plate string          `json:"plate"`
	Reste decimal.Decimal `json:"reste"`
}
